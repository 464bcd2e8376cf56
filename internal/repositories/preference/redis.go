package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	preferenceKeyPrefix = "preference:"
)

// Config holds configuration for the Redis preference repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed preference repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetProfile retrieves a user's profile from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	value, err := r.client.Get(ctx, preferenceKeyPrefix+input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetProfileOutput{Profile: models.ProfileUnset}, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	// Anything other than a selectable profile reads as unset
	return &GetProfileOutput{Profile: models.ParseProfile(value)}, nil
}

// SetProfile stores a user's profile in Redis
func (r *redisRepository) SetProfile(ctx context.Context, input *SetProfileInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	if !input.Profile.IsValid() {
		return ErrInvalidProfile
	}

	if err := r.client.Set(ctx, preferenceKeyPrefix+input.UserID, string(input.Profile), 0).Err(); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}

// ClearProfile removes a user's profile from Redis
func (r *redisRepository) ClearProfile(ctx context.Context, input *ClearProfileInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	if err := r.client.Del(ctx, preferenceKeyPrefix+input.UserID).Err(); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	return nil
}
