package preference

import (
	"context"
	"sync"

	"github.com/KirkDiggler/siptally/internal/models"
)

// memoryRepository keeps profiles in process memory
type memoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]models.Profile
}

// NewMemory creates an in-memory preference repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		profiles: make(map[string]models.Profile),
	}
}

// GetProfile retrieves a user's profile
func (r *memoryRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetProfileOutput{Profile: r.profiles[input.UserID]}, nil
}

// SetProfile stores a user's profile
func (r *memoryRepository) SetProfile(ctx context.Context, input *SetProfileInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	if !input.Profile.IsValid() {
		return ErrInvalidProfile
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[input.UserID] = input.Profile
	return nil
}

// ClearProfile forgets a user's profile
func (r *memoryRepository) ClearProfile(ctx context.Context, input *ClearProfileInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.profiles, input.UserID)
	return nil
}
