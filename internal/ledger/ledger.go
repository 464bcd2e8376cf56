// Package ledger keeps the drinks logged during a session and decides when
// a guideline limit has been crossed.
//
// A Ledger is not safe for concurrent use; callers hold one lock per session.
package ledger

import (
	"fmt"

	"github.com/KirkDiggler/siptally/internal/models"
)

// Config holds configuration for a ledger
type Config struct {
	// Catalog classifies beers and provides limits
	Catalog Catalog
}

// Ledger is the ordered list of drinks logged in one session
type Ledger struct {
	catalog Catalog
	entries []*models.BeverageEntry
	ids     map[string]struct{}
}

// New creates an empty ledger
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	return &Ledger{
		catalog: cfg.Catalog,
		entries: []*models.BeverageEntry{},
		ids:     make(map[string]struct{}),
	}, nil
}

// Append adds the entry to the end of the ledger.
// For a beer that classifies into a bucket it returns the evaluation of that
// bucket only; every other entry returns a nil result. Nothing is appended
// when an error is returned.
func (l *Ledger) Append(entry *models.BeverageEntry, profile models.Profile) (*models.CrossingResult, error) {
	if !profile.IsValid() {
		return nil, ErrProfileRequired
	}

	if err := l.validate(entry); err != nil {
		return nil, err
	}

	stored := *entry
	l.entries = append(l.entries, &stored)
	l.ids[stored.ID] = struct{}{}

	bucket, ok := l.classify(&stored)
	if !ok {
		return nil, nil
	}

	return l.Evaluate(bucket, profile)
}

// Remove deletes the entry with the given ID.
// It reports whether an entry was removed; an unknown ID is not an error.
func (l *Ledger) Remove(id string) bool {
	if _, ok := l.ids[id]; !ok {
		return false
	}

	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			delete(l.ids, id)
			return true
		}
	}
	return false
}

// Evaluate sums every beer currently in the bucket and compares the sum
// with the profile's limit. The sum is recomputed from the full ledger.
func (l *Ledger) Evaluate(bucket models.GuidelineBucket, profile models.Profile) (*models.CrossingResult, error) {
	if !profile.IsValid() {
		return nil, ErrProfileRequired
	}

	limit, err := l.catalog.Limit(bucket, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to get limit for %s: %w", bucket, err)
	}

	actual := l.BucketVolume(bucket)

	return &models.CrossingResult{
		Bucket:   bucket,
		Profile:  profile,
		Crossed:  limit != models.NoLimit && actual > limit,
		LimitML:  limit,
		ActualML: actual,
	}, nil
}

// BucketVolume returns the volume of classified beers in a bucket
func (l *Ledger) BucketVolume(bucket models.GuidelineBucket) int {
	total := 0
	for _, entry := range l.entries {
		if b, ok := l.classify(entry); ok && b == bucket {
			total += entry.VolumeML
		}
	}
	return total
}

// TotalVolume returns the volume of every entry, all categories included
func (l *Ledger) TotalVolume() int {
	total := 0
	for _, entry := range l.entries {
		total += entry.VolumeML
	}
	return total
}

// Summary derives the per-bucket totals from the current entries
func (l *Ledger) Summary() *models.ConsumptionSummary {
	summary := &models.ConsumptionSummary{
		EntryCount: len(l.entries),
		BucketML:   make(map[models.GuidelineBucket]int),
	}

	for _, entry := range l.entries {
		summary.TotalML += entry.VolumeML

		if entry.Category != models.CategoryBeer {
			continue
		}

		if bucket, ok := l.classify(entry); ok {
			summary.BucketML[bucket] += entry.VolumeML
		} else {
			summary.UnclassifiedBeerML += entry.VolumeML
		}
	}

	return summary
}

// Entries returns copies of the entries in insertion order
func (l *Ledger) Entries() []*models.BeverageEntry {
	out := make([]*models.BeverageEntry, 0, len(l.entries))
	for _, entry := range l.entries {
		e := *entry
		out = append(out, &e)
	}
	return out
}

// Get returns a copy of the entry with the given ID
func (l *Ledger) Get(id string) (*models.BeverageEntry, bool) {
	for _, entry := range l.entries {
		if entry.ID == id {
			e := *entry
			return &e, true
		}
	}
	return nil, false
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Classify returns the bucket an entry counts toward, if any
func (l *Ledger) Classify(entry *models.BeverageEntry) (models.GuidelineBucket, bool) {
	if entry == nil {
		return "", false
	}
	return l.classify(entry)
}

// classify only considers beers that carry product details
func (l *Ledger) classify(entry *models.BeverageEntry) (models.GuidelineBucket, bool) {
	if !entry.HasProduct() {
		return "", false
	}
	return l.catalog.Classify(entry.AlcoholPercentage, entry.Style)
}

func (l *Ledger) validate(entry *models.BeverageEntry) error {
	if entry == nil {
		return ErrNilEntry
	}

	if entry.ID == "" {
		return ErrEmptyEntryID
	}

	if !entry.Category.IsValid() {
		return ErrInvalidCategory
	}

	if entry.VolumeML != entry.Category.VolumeML() {
		return ErrInvalidVolume
	}

	if entry.Category != models.CategoryBeer &&
		(entry.ProductName != "" || entry.AlcoholPercentage != "" || entry.Style != "") {
		return ErrUnexpectedBeer
	}

	if _, exists := l.ids[entry.ID]; exists {
		return ErrDuplicateEntryID
	}

	return nil
}
