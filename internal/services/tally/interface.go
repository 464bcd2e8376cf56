package tally

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/siptally/internal/services/tally Service

import (
	"context"

	"github.com/KirkDiggler/siptally/internal/ledger"
	"github.com/KirkDiggler/siptally/internal/models"
)

// Service defines the drink tally operations offered to front ends
type Service interface {
	// SetProfile records the profile a user's limits are based on
	SetProfile(ctx context.Context, input *SetProfileInput) (*SetProfileOutput, error)

	// GetProfile returns the profile a user has chosen, if any
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// LogDrink appends a drink to the user's session and checks its guideline
	LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error)

	// RemoveDrink deletes a logged drink; unknown IDs are ignored
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*RemoveDrinkOutput, error)

	// GetLog returns the drinks logged in the current session
	GetLog(ctx context.Context, input *GetLogInput) (*GetLogOutput, error)

	// GetSummary returns totals and the state of every guideline
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// StartSession begins a fresh, empty session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// EndSession discards the current session and its log
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// ListProducts returns the known beers and their buckets
	ListProducts(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// ListGuidelines returns the guideline table
	ListGuidelines(ctx context.Context, input *ListGuidelinesInput) (*ListGuidelinesOutput, error)
}

// Catalog is the guideline and product reference data the service needs
type Catalog interface {
	ledger.Catalog

	// Guideline returns the guideline of a bucket
	Guideline(bucket models.GuidelineBucket) (*models.Guideline, error)

	// Guidelines returns every guideline in display order
	Guidelines() []*models.Guideline

	// Product looks up a known beer by name
	Product(name string) (*models.Product, error)

	// Products returns every known beer
	Products() []*models.Product
}
