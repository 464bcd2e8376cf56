package preference

import (
	"errors"

	"github.com/KirkDiggler/siptally/internal/models"
)

var (
	// ErrInvalidProfile is returned when storing a profile that cannot be selected
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrEmptyUserID is returned when no user ID is supplied
	ErrEmptyUserID = errors.New("user ID cannot be empty")
)

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the result of retrieving a profile
type GetProfileOutput struct {
	// Profile is the stored profile, or models.ProfileUnset
	Profile models.Profile
}

// SetProfileInput contains parameters for storing a profile
type SetProfileInput struct {
	UserID  string
	Profile models.Profile
}

// ClearProfileInput contains parameters for forgetting a profile
type ClearProfileInput struct {
	UserID string
}
