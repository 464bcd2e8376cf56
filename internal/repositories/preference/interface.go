package preference

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/siptally/internal/repositories/preference Repository

import (
	"context"
)

// Repository stores the profile each user has chosen
type Repository interface {
	// GetProfile retrieves a user's profile, ProfileUnset when none was chosen
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// SetProfile stores a user's profile
	SetProfile(ctx context.Context, input *SetProfileInput) error

	// ClearProfile forgets a user's profile
	ClearProfile(ctx context.Context, input *ClearProfileInput) error
}
