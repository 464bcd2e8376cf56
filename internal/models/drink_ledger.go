package models

import (
	"time"
)

// Category is the kind of beverage that was logged
type Category string

const (
	// CategoryBeer is a bottle of beer
	CategoryBeer Category = "beer"

	// CategoryWine is a glass of wine
	CategoryWine Category = "wine"

	// CategorySpirits is a shot of spirits
	CategorySpirits Category = "spirits"
)

// Standard serving sizes in ml. The category alone decides the volume.
const (
	BeerVolumeML    = 330
	WineVolumeML    = 150
	SpiritsVolumeML = 45
)

// IsValid reports whether the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryBeer, CategoryWine, CategorySpirits:
		return true
	default:
		return false
	}
}

// VolumeML returns the fixed serving volume for the category
func (c Category) VolumeML() int {
	switch c {
	case CategoryBeer:
		return BeerVolumeML
	case CategoryWine:
		return WineVolumeML
	case CategorySpirits:
		return SpiritsVolumeML
	default:
		return 0
	}
}

// BeverageEntry is a single logged drink
type BeverageEntry struct {
	// ID is the unique identifier of the entry, used for removal
	ID string

	// Category is the kind of drink
	Category Category

	// VolumeML is the volume of the drink in milliliters
	VolumeML int

	// Timestamp is when the drink was logged
	Timestamp time.Time

	// ProductName is the beer product, only set for known beers
	ProductName string

	// AlcoholPercentage is the declared strength of the beer, e.g. "5.3–5.5%"
	AlcoholPercentage string

	// Style is the beer style label, e.g. "Weissbier"
	Style string
}

// HasProduct reports whether the entry is a beer enriched from a known product.
// Percentage or style may still be empty on such an entry.
func (e *BeverageEntry) HasProduct() bool {
	return e.Category == CategoryBeer && e.ProductName != ""
}

// DisplayName returns the product name for known beers, otherwise the category
func (e *BeverageEntry) DisplayName() string {
	if e.ProductName != "" {
		return e.ProductName
	}
	switch e.Category {
	case CategoryBeer:
		return "Beer"
	case CategoryWine:
		return "Wine"
	case CategorySpirits:
		return "Spirits"
	default:
		return string(e.Category)
	}
}

// ConsumptionSummary is derived from the ledger contents and never stored
type ConsumptionSummary struct {
	// TotalML is the volume across every entry of every category
	TotalML int

	// EntryCount is the number of logged entries
	EntryCount int

	// BucketML is the volume of classified beers per bucket
	BucketML map[GuidelineBucket]int

	// UnclassifiedBeerML is the volume of beers that matched no bucket
	UnclassifiedBeerML int
}
