package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/siptally/internal/repositories/session Repository

import (
	"context"
)

// Repository keeps the active session of each user.
// Sessions live only as long as the process; nothing is persisted.
type Repository interface {
	// StartSession stores a new session for a user, replacing any previous one
	StartSession(ctx context.Context, input *StartSessionInput) error

	// GetSession retrieves the active session for a user
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// EndSession discards the active session and its ledger
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// WithSession runs a function while holding the session lock
	WithSession(ctx context.Context, input *WithSessionInput) error
}
