package tally

import (
	"log/slog"

	"github.com/KirkDiggler/siptally/internal/common/clock"
	"github.com/KirkDiggler/siptally/internal/common/uuid"
	"github.com/KirkDiggler/siptally/internal/models"
	preferenceRepo "github.com/KirkDiggler/siptally/internal/repositories/preference"
	sessionRepo "github.com/KirkDiggler/siptally/internal/repositories/session"
)

// Config holds configuration for the tally service
type Config struct {
	// Repository dependencies
	PreferenceRepo preferenceRepo.Repository
	SessionRepo    sessionRepo.Repository

	// Catalog provides guidelines and known products
	Catalog Catalog

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional, slog.Default() is used when nil
	Logger *slog.Logger
}

// SetProfileInput contains parameters for choosing a profile
type SetProfileInput struct {
	// UserID is the user choosing the profile
	UserID string

	// Profile is the chosen profile
	Profile models.Profile
}

// SetProfileOutput contains the result of choosing a profile
type SetProfileOutput struct {
	// Profile is the stored profile
	Profile models.Profile

	// Previous is the profile that was replaced, if any
	Previous models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the result of retrieving a profile
type GetProfileOutput struct {
	// Profile is the chosen profile or models.ProfileUnset
	Profile models.Profile

	// IsSet is false until the user has chosen a profile
	IsSet bool
}

// LogDrinkInput contains parameters for logging a drink
type LogDrinkInput struct {
	// UserID is the user drinking
	UserID string

	// Category is the kind of drink
	Category models.Category

	// ProductName optionally names the beer; only valid for beer
	ProductName string
}

// LogDrinkOutput contains the result of logging a drink
type LogDrinkOutput struct {
	// Entry is the entry that was appended
	Entry *models.BeverageEntry

	// Bucket is the guideline bucket of the entry when Classified is true
	Bucket models.GuidelineBucket

	// Classified is true when the entry counts toward a bucket
	Classified bool

	// UnknownProduct is true when the named beer was not in the product table
	UnknownProduct bool

	// Crossing is the evaluation of the entry's bucket, nil when unclassified
	Crossing *models.CrossingResult

	// Guideline describes the evaluated bucket, nil when unclassified
	Guideline *models.Guideline

	// Summary is the state of the ledger after the append
	Summary *models.ConsumptionSummary
}

// RemoveDrinkInput contains parameters for removing a drink
type RemoveDrinkInput struct {
	UserID  string
	EntryID string
}

// RemoveDrinkOutput contains the result of removing a drink
type RemoveDrinkOutput struct {
	// Removed is false when there was no such entry
	Removed bool

	// Entry is the removed entry
	Entry *models.BeverageEntry

	// Summary is the state of the ledger after the removal, nil without a session
	Summary *models.ConsumptionSummary
}

// GetLogInput contains parameters for retrieving the log
type GetLogInput struct {
	UserID string
}

// LogEntry is a logged drink together with its classification
type LogEntry struct {
	Entry      *models.BeverageEntry
	Bucket     models.GuidelineBucket
	Classified bool
}

// GetLogOutput contains the drinks of the current session
type GetLogOutput struct {
	// Session is nil when the user has no active session
	Session *models.Session

	// Entries are in the order they were logged
	Entries []*LogEntry

	// Summary is the state of the ledger
	Summary *models.ConsumptionSummary
}

// GetSummaryInput contains parameters for retrieving the summary
type GetSummaryInput struct {
	UserID string
}

// BucketStatus is one guideline with the volume logged against it
type BucketStatus struct {
	Guideline *models.Guideline

	// Result is nil when the user has not chosen a profile
	Result *models.CrossingResult

	// ActualML is the volume logged in the bucket
	ActualML int
}

// GetSummaryOutput contains the totals for the current session
type GetSummaryOutput struct {
	// Profile is the profile used for the limits
	Profile models.Profile

	// Summary is the state of the ledger, empty without a session
	Summary *models.ConsumptionSummary

	// Buckets holds every guideline in display order
	Buckets []*BucketStatus
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	UserID string
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Session *models.Session
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	UserID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	// Ended is false when there was no session to end
	Ended bool

	// Summary is the final state of the discarded ledger
	Summary *models.ConsumptionSummary
}

// ListProductsInput contains parameters for listing products
type ListProductsInput struct{}

// ProductInfo is a known beer with the bucket it classifies into
type ProductInfo struct {
	Product    *models.Product
	Bucket     models.GuidelineBucket
	Classified bool
}

// ListProductsOutput contains the known beers
type ListProductsOutput struct {
	Products []*ProductInfo
}

// ListGuidelinesInput contains parameters for listing guidelines
type ListGuidelinesInput struct {
	// UserID is optional; when set the user's profile is reported
	UserID string
}

// ListGuidelinesOutput contains the guideline table
type ListGuidelinesOutput struct {
	Guidelines []*models.Guideline

	// Profile is the user's profile, models.ProfileUnset when unknown
	Profile models.Profile
}
