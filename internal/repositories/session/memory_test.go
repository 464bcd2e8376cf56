package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/siptally/internal/guidelines"
	"github.com/KirkDiggler/siptally/internal/ledger"
	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	catalog *guidelines.Catalog
	ctx     context.Context
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	catalog, err := guidelines.New(nil)
	s.Require().NoError(err)
	s.catalog = catalog

	s.repo = NewMemory()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) newLedger() *ledger.Ledger {
	l, err := ledger.New(&ledger.Config{Catalog: s.catalog})
	s.Require().NoError(err)
	return l
}

func (s *MemoryRepositoryTestSuite) start(userID, sessionID string) {
	err := s.repo.StartSession(s.ctx, &StartSessionInput{
		Session: &models.Session{ID: sessionID, UserID: userID, StartedAt: s.testNow},
		Ledger:  s.newLedger(),
	})
	s.Require().NoError(err)
}

func (s *MemoryRepositoryTestSuite) TestStartAndGetSession() {
	s.start("user-1", "session-1")

	output, err := s.repo.GetSession(s.ctx, &GetSessionInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal("session-1", output.Session.ID)
	s.Equal(s.testNow, output.Session.StartedAt)
}

func (s *MemoryRepositoryTestSuite) TestGetMissingSession() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{UserID: "user-1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestStartReplacesLedger() {
	s.start("user-1", "session-1")

	err := s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			_, err := l.Append(&models.BeverageEntry{
				ID:       "wine-1",
				Category: models.CategoryWine,
				VolumeML: models.WineVolumeML,
			}, models.ProfileA)
			return err
		},
	})
	s.Require().NoError(err)

	s.start("user-1", "session-2")

	err = s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Fn: func(session *models.Session, l *ledger.Ledger) error {
			s.Equal("session-2", session.ID)
			s.Equal(0, l.Len())
			return nil
		},
	})
	s.Require().NoError(err)
}

func (s *MemoryRepositoryTestSuite) TestEndSession() {
	s.start("user-1", "session-1")

	output, err := s.repo.EndSession(s.ctx, &EndSessionInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.True(output.Ended)
	s.Equal("session-1", output.Session.ID)
	s.Require().NotNil(output.Summary)
	s.Equal(0, output.Summary.EntryCount)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{UserID: "user-1"})
	s.ErrorIs(err, ErrSessionNotFound)

	output, err = s.repo.EndSession(s.ctx, &EndSessionInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.False(output.Ended)
}

func (s *MemoryRepositoryTestSuite) TestWithSessionWithoutStart() {
	err := s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Fn:     func(*models.Session, *ledger.Ledger) error { return nil },
	})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestWithSessionStartsOnDemand() {
	starts := 0
	input := &WithSessionInput{
		UserID: "user-1",
		Start: func() (*models.Session, *ledger.Ledger, error) {
			starts++
			return &models.Session{ID: fmt.Sprintf("session-%d", starts), StartedAt: s.testNow}, s.newLedger(), nil
		},
		Fn: func(session *models.Session, _ *ledger.Ledger) error {
			s.Equal("session-1", session.ID)
			s.Equal("user-1", session.UserID)
			return nil
		},
	}

	s.Require().NoError(s.repo.WithSession(s.ctx, input))
	s.Require().NoError(s.repo.WithSession(s.ctx, input))
	s.Equal(1, starts)
}

func (s *MemoryRepositoryTestSuite) TestWithSessionPropagatesErrors() {
	startErr := errors.New("cannot start")
	err := s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Start: func() (*models.Session, *ledger.Ledger, error) {
			return nil, nil, startErr
		},
		Fn: func(*models.Session, *ledger.Ledger) error { return nil },
	})
	s.ErrorIs(err, startErr)

	s.start("user-1", "session-1")
	fnErr := errors.New("fn failed")
	err = s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Fn:     func(*models.Session, *ledger.Ledger) error { return fnErr },
	})
	s.ErrorIs(err, fnErr)
}

func (s *MemoryRepositoryTestSuite) TestWithSessionSerializesWriters() {
	s.start("user-1", "session-1")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.repo.WithSession(s.ctx, &WithSessionInput{
				UserID: "user-1",
				Fn: func(_ *models.Session, l *ledger.Ledger) error {
					_, err := l.Append(&models.BeverageEntry{
						ID:       fmt.Sprintf("spirits-%d", i),
						Category: models.CategorySpirits,
						VolumeML: models.SpiritsVolumeML,
					}, models.ProfileB)
					return err
				},
			})
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	err := s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			s.Equal(100, l.Len())
			s.Equal(100*models.SpiritsVolumeML, l.TotalVolume())
			return nil
		},
	})
	s.Require().NoError(err)
}

func (s *MemoryRepositoryTestSuite) TestEndSessionSummaryCountsEveryDiscardedDrink() {
	s.start("user-1", "session-1")

	start := func() (*models.Session, *ledger.Ledger, error) {
		return &models.Session{ID: "session-next", StartedAt: s.testNow}, s.newLedger(), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.repo.WithSession(s.ctx, &WithSessionInput{
				UserID: "user-1",
				Start:  start,
				Fn: func(_ *models.Session, l *ledger.Ledger) error {
					_, err := l.Append(&models.BeverageEntry{
						ID:       fmt.Sprintf("wine-%d", i),
						Category: models.CategoryWine,
						VolumeML: models.WineVolumeML,
					}, models.ProfileA)
					return err
				},
			})
			s.NoError(err)
		}(i)
	}

	ended, err := s.repo.EndSession(s.ctx, &EndSessionInput{UserID: "user-1"})
	s.Require().NoError(err)
	wg.Wait()

	s.Require().True(ended.Ended)
	remaining := 0
	err = s.repo.WithSession(s.ctx, &WithSessionInput{
		UserID: "user-1",
		Start:  start,
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			remaining = l.Len()
			return nil
		},
	})
	s.Require().NoError(err)

	// Every drink landed either in the ended session's summary or in the next session
	s.Equal(100, ended.Summary.EntryCount+remaining)
	s.Equal(ended.Summary.EntryCount*models.WineVolumeML, ended.Summary.TotalML)
}

func (s *MemoryRepositoryTestSuite) TestInputValidation() {
	s.Error(s.repo.StartSession(s.ctx, nil))
	s.Error(s.repo.StartSession(s.ctx, &StartSessionInput{Session: &models.Session{ID: "x"}, Ledger: s.newLedger()}))

	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{})
	s.Error(err)

	_, err = s.repo.EndSession(s.ctx, nil)
	s.Error(err)

	s.Error(s.repo.WithSession(s.ctx, &WithSessionInput{UserID: "user-1"}))
}
