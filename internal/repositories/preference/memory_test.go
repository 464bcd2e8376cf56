package preference

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	output, err := repo.GetProfile(ctx, &GetProfileInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, models.ProfileUnset, output.Profile)

	require.NoError(t, repo.SetProfile(ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileA}))
	output, err = repo.GetProfile(ctx, &GetProfileInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, models.ProfileA, output.Profile)

	assert.ErrorIs(t, repo.SetProfile(ctx, &SetProfileInput{UserID: "user-1", Profile: "other"}), ErrInvalidProfile)

	require.NoError(t, repo.ClearProfile(ctx, &ClearProfileInput{UserID: "user-1"}))
	output, err = repo.GetProfile(ctx, &GetProfileInput{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, models.ProfileUnset, output.Profile)

	_, err = repo.GetProfile(ctx, nil)
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestMemoryRepositoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			profile := models.ProfileA
			if i%2 == 0 {
				profile = models.ProfileB
			}
			_ = repo.SetProfile(ctx, &SetProfileInput{UserID: "shared", Profile: profile})
			_, _ = repo.GetProfile(ctx, &GetProfileInput{UserID: "shared"})
		}(i)
	}
	wg.Wait()

	output, err := repo.GetProfile(ctx, &GetProfileInput{UserID: "shared"})
	require.NoError(t, err)
	assert.True(t, output.Profile.IsValid())
}
