package preference

import (
	"context"
	"testing"

	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestGetUnsetProfile() {
	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.ProfileUnset, output.Profile)
}

func (s *RedisRepositoryTestSuite) TestSetAndGetProfile() {
	err := s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileB})
	s.Require().NoError(err)

	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.ProfileB, output.Profile)

	stored, err := s.mr.Get("preference:user-1")
	s.Require().NoError(err)
	s.Equal("female", stored)
}

func (s *RedisRepositoryTestSuite) TestProfileCanBeReselected() {
	s.Require().NoError(s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileB}))
	s.Require().NoError(s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileA}))

	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.ProfileA, output.Profile)
}

func (s *RedisRepositoryTestSuite) TestProfilesAreScopedPerUser() {
	s.Require().NoError(s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileA}))

	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-2"})
	s.Require().NoError(err)
	s.Equal(models.ProfileUnset, output.Profile)
}

func (s *RedisRepositoryTestSuite) TestStoredGarbageReadsAsUnset() {
	s.Require().NoError(s.mr.Set("preference:user-1", "other"))

	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.ProfileUnset, output.Profile)
}

func (s *RedisRepositoryTestSuite) TestSetInvalidProfile() {
	err := s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.Profile("other")})
	s.ErrorIs(err, ErrInvalidProfile)

	err = s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileUnset})
	s.ErrorIs(err, ErrInvalidProfile)
}

func (s *RedisRepositoryTestSuite) TestClearProfile() {
	s.Require().NoError(s.repo.SetProfile(s.ctx, &SetProfileInput{UserID: "user-1", Profile: models.ProfileA}))
	s.Require().NoError(s.repo.ClearProfile(s.ctx, &ClearProfileInput{UserID: "user-1"}))

	output, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(models.ProfileUnset, output.Profile)
	s.False(s.mr.Exists("preference:user-1"))
}

func (s *RedisRepositoryTestSuite) TestEmptyUserID() {
	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{})
	s.ErrorIs(err, ErrEmptyUserID)

	err = s.repo.SetProfile(s.ctx, nil)
	s.ErrorIs(err, ErrEmptyUserID)

	err = s.repo.ClearProfile(s.ctx, &ClearProfileInput{})
	s.ErrorIs(err, ErrEmptyUserID)
}

func (s *RedisRepositoryTestSuite) TestRedisFailure() {
	s.mr.SetError("server down")

	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{UserID: "user-1"})
	s.Error(err)
}
