package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/KirkDiggler/siptally/internal/ledger Catalog

import "github.com/KirkDiggler/siptally/internal/models"

// Catalog classifies beers and supplies the per-profile limits
type Catalog interface {
	// Classify places a beer into a bucket, ok is false when unclassifiable
	Classify(alcoholPercentage, style string) (models.GuidelineBucket, bool)

	// Limit returns the safe volume of a bucket for a profile, or models.NoLimit
	Limit(bucket models.GuidelineBucket, profile models.Profile) (int, error)
}
