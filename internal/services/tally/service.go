package tally

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/siptally/internal/common/clock"
	"github.com/KirkDiggler/siptally/internal/common/uuid"
	"github.com/KirkDiggler/siptally/internal/guidelines"
	"github.com/KirkDiggler/siptally/internal/ledger"
	"github.com/KirkDiggler/siptally/internal/models"
	preferenceRepo "github.com/KirkDiggler/siptally/internal/repositories/preference"
	sessionRepo "github.com/KirkDiggler/siptally/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	preferenceRepo preferenceRepo.Repository
	sessionRepo    sessionRepo.Repository
	catalog        Catalog
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *slog.Logger
}

// New creates a new tally service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PreferenceRepo == nil {
		return nil, ErrNilPreferenceRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		preferenceRepo: cfg.PreferenceRepo,
		sessionRepo:    cfg.SessionRepo,
		catalog:        cfg.Catalog,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         logger,
	}, nil
}

// SetProfile records the profile a user's limits are based on
func (s *service) SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if !input.Profile.IsValid() {
		return nil, ErrInvalidProfile
	}

	current, err := s.preferenceRepo.GetProfile(ctx, &preferenceRepo.GetProfileInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	err = s.preferenceRepo.SetProfile(ctx, &preferenceRepo.SetProfileInput{
		UserID:  input.UserID,
		Profile: input.Profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set profile: %w", err)
	}

	s.logger.Info("profile selected", "user_id", input.UserID, "profile", input.Profile)

	return &SetProfileOutput{
		Profile:  input.Profile,
		Previous: current.Profile,
	}, nil
}

// GetProfile returns the profile a user has chosen, if any
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	profile, err := s.profileFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileOutput{
		Profile: profile,
		IsSet:   profile.IsSet(),
	}, nil
}

// LogDrink appends a drink to the user's session and checks its guideline
func (s *service) LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	if input.ProductName != "" && input.Category != models.CategoryBeer {
		return nil, ErrProductOnlyForBeer
	}

	profile, err := s.profileFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Logging is gated on a chosen profile, never on a guessed default
	if !profile.IsSet() {
		return nil, ErrProfileNotSet
	}

	entry := &models.BeverageEntry{
		ID:        s.uuidGenerator.NewUUID(),
		Category:  input.Category,
		VolumeML:  input.Category.VolumeML(),
		Timestamp: s.clock.Now(),
	}

	output := &LogDrinkOutput{}

	if input.ProductName != "" {
		product, err := s.catalog.Product(input.ProductName)
		switch {
		case errors.Is(err, guidelines.ErrProductNotFound):
			// Still logged as a beer, just without bucket accounting
			output.UnknownProduct = true
			s.logger.Warn("unknown beer product", "user_id", input.UserID, "product", input.ProductName)
		case err != nil:
			return nil, fmt.Errorf("failed to look up product: %w", err)
		default:
			entry.ProductName = product.Name
			entry.AlcoholPercentage = product.AlcoholPercentage
			entry.Style = product.Style
		}
	}

	err = s.sessionRepo.WithSession(ctx, &sessionRepo.WithSessionInput{
		UserID: input.UserID,
		Start:  s.newSession,
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			crossing, err := l.Append(entry, profile)
			if err != nil {
				return err
			}

			output.Crossing = crossing
			output.Bucket, output.Classified = l.Classify(entry)
			output.Summary = l.Summary()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, ledger.ErrProfileRequired) {
			return nil, ErrProfileNotSet
		}
		return nil, fmt.Errorf("failed to log drink: %w", err)
	}

	stored := *entry
	output.Entry = &stored

	if output.Crossing != nil {
		guideline, err := s.catalog.Guideline(output.Crossing.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to get guideline: %w", err)
		}
		output.Guideline = guideline

		if output.Crossing.Crossed {
			s.logger.Info("guideline limit crossed",
				"user_id", input.UserID,
				"bucket", output.Crossing.Bucket,
				"limit_ml", output.Crossing.LimitML,
				"actual_ml", output.Crossing.ActualML,
			)
		}
	}

	s.logger.Debug("drink logged",
		"user_id", input.UserID,
		"entry_id", entry.ID,
		"category", entry.Category,
		"product", entry.ProductName,
	)

	return output, nil
}

// RemoveDrink deletes a logged drink; unknown IDs and missing sessions are ignored
func (s *service) RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	if input.EntryID == "" {
		return nil, ErrEmptyEntryID
	}

	output := &RemoveDrinkOutput{}
	err := s.sessionRepo.WithSession(ctx, &sessionRepo.WithSessionInput{
		UserID: input.UserID,
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			output.Entry, _ = l.Get(input.EntryID)
			output.Removed = l.Remove(input.EntryID)
			output.Summary = l.Summary()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &RemoveDrinkOutput{Removed: false}, nil
		}
		return nil, fmt.Errorf("failed to remove drink: %w", err)
	}

	if !output.Removed {
		s.logger.Debug("remove of unknown entry ignored", "user_id", input.UserID, "entry_id", input.EntryID)
	}

	return output, nil
}

// GetLog returns the drinks logged in the current session
func (s *service) GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	output := &GetLogOutput{Entries: []*LogEntry{}}
	err := s.sessionRepo.WithSession(ctx, &sessionRepo.WithSessionInput{
		UserID: input.UserID,
		Fn: func(session *models.Session, l *ledger.Ledger) error {
			sessionCopy := *session
			output.Session = &sessionCopy

			for _, entry := range l.Entries() {
				bucket, ok := l.Classify(entry)
				output.Entries = append(output.Entries, &LogEntry{
					Entry:      entry,
					Bucket:     bucket,
					Classified: ok,
				})
			}

			output.Summary = l.Summary()
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			output.Summary = emptySummary()
			return output, nil
		}
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	return output, nil
}

// GetSummary returns totals and the state of every guideline
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	profile, err := s.profileFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &GetSummaryOutput{
		Profile: profile,
		Summary: emptySummary(),
	}

	var results map[models.GuidelineBucket]*models.CrossingResult
	err = s.sessionRepo.WithSession(ctx, &sessionRepo.WithSessionInput{
		UserID: input.UserID,
		Fn: func(_ *models.Session, l *ledger.Ledger) error {
			output.Summary = l.Summary()

			if !profile.IsSet() {
				return nil
			}

			results = make(map[models.GuidelineBucket]*models.CrossingResult, len(models.AllBuckets))
			for _, bucket := range models.AllBuckets {
				result, err := l.Evaluate(bucket, profile)
				if err != nil {
					return err
				}
				results[bucket] = result
			}
			return nil
		},
	})
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	for _, guideline := range s.catalog.Guidelines() {
		status := &BucketStatus{
			Guideline: guideline,
			ActualML:  output.Summary.BucketML[guideline.Bucket],
		}

		if result, ok := results[guideline.Bucket]; ok {
			status.Result = result
		} else if profile.IsSet() {
			// No session yet, nothing logged against any limit
			limit, _ := guideline.LimitFor(profile)
			status.Result = &models.CrossingResult{
				Bucket:  guideline.Bucket,
				Profile: profile,
				LimitML: limit,
			}
		}

		output.Buckets = append(output.Buckets, status)
	}

	return output, nil
}

// StartSession begins a fresh, empty session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	session, l, err := s.newSession()
	if err != nil {
		return nil, err
	}
	session.UserID = input.UserID

	err = s.sessionRepo.StartSession(ctx, &sessionRepo.StartSessionInput{
		Session: session,
		Ledger:  l,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Info("session started", "user_id", input.UserID, "session_id", session.ID)

	sessionCopy := *session
	return &StartSessionOutput{Session: &sessionCopy}, nil
}

// EndSession discards the current session and its log
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	// The summary is read under the same lock that retires the session
	ended, err := s.sessionRepo.EndSession(ctx, &sessionRepo.EndSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}

	if !ended.Ended {
		return &EndSessionOutput{Ended: false}, nil
	}

	s.logger.Info("session ended", "user_id", input.UserID, "session_id", ended.Session.ID, "total_ml", ended.Summary.TotalML)

	return &EndSessionOutput{
		Ended:   true,
		Summary: ended.Summary,
	}, nil
}

// ListProducts returns the known beers and their buckets
func (s *service) ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error) {
	products := s.catalog.Products()
	output := &ListProductsOutput{
		Products: make([]*ProductInfo, 0, len(products)),
	}

	for _, product := range products {
		bucket, ok := s.catalog.Classify(product.AlcoholPercentage, product.Style)
		output.Products = append(output.Products, &ProductInfo{
			Product:    product,
			Bucket:     bucket,
			Classified: ok,
		})
	}

	return output, nil
}

// ListGuidelines returns the guideline table
func (s *service) ListGuidelines(ctx context.Context, input *ListGuidelinesInput) (*ListGuidelinesOutput, error) {
	output := &ListGuidelinesOutput{
		Guidelines: s.catalog.Guidelines(),
	}

	if input != nil && input.UserID != "" {
		profile, err := s.profileFor(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		output.Profile = profile
	}

	return output, nil
}

// newSession builds an empty session and ledger
func (s *service) newSession() (*models.Session, *ledger.Ledger, error) {
	l, err := ledger.New(&ledger.Config{Catalog: s.catalog})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	return &models.Session{
		ID:        s.uuidGenerator.NewUUID(),
		StartedAt: s.clock.Now(),
	}, l, nil
}

func (s *service) profileFor(ctx context.Context, userID string) (models.Profile, error) {
	if userID == "" {
		return models.ProfileUnset, ErrEmptyUserID
	}

	output, err := s.preferenceRepo.GetProfile(ctx, &preferenceRepo.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		return models.ProfileUnset, fmt.Errorf("failed to get profile: %w", err)
	}

	return output.Profile, nil
}

func emptySummary() *models.ConsumptionSummary {
	return &models.ConsumptionSummary{
		BucketML: make(map[models.GuidelineBucket]int),
	}
}
