package guidelines

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/siptally/internal/models"
)

var (
	// ErrUnknownBucket is returned when a bucket has no guideline
	ErrUnknownBucket = errors.New("unknown guideline bucket")

	// ErrProductNotFound is returned when a product name is not in the table
	ErrProductNotFound = errors.New("product not found")
)

// defaultGuidelines is the reference table, one entry per bucket
var defaultGuidelines = []*models.Guideline{
	{Bucket: models.BucketLightLager, Label: "Light Lager", Range: "3.5–4.5%", LimitA: 600, LimitB: 400},
	{Bucket: models.BucketRegularLager, Label: "Regular Lager", Range: "5.0%", LimitA: 500, LimitB: 330},
	{Bucket: models.BucketStrongLager, Label: "Strong Lager", Range: "6–7%", LimitA: 400, LimitB: 300},
	{Bucket: models.BucketIpaCraft, Label: "IPA/Craft", Range: "6–8%", LimitA: 330, LimitB: 250},
	{Bucket: models.BucketStoutDark, Label: "Stout/Dark Beer", Range: "5–7%", LimitA: 400, LimitB: 300},
	{Bucket: models.BucketWheatBeer, Label: "Wheat Beer", Range: "5.3%", LimitA: 400, LimitB: 300},
	{Bucket: models.BucketAlcoholFree, Label: "Alcohol-free", Range: "<0.5%", LimitA: models.NoLimit, LimitB: models.NoLimit},
}

// Config holds configuration for the guideline catalog
type Config struct {
	// ProductsYAML overrides the embedded product table
	ProductsYAML []byte
}

// Catalog holds the guideline table and the known beer products
type Catalog struct {
	guidelines map[models.GuidelineBucket]*models.Guideline
	products   *ProductTable
}

// New creates a catalog with the reference guidelines.
// A nil config uses the embedded product table.
func New(cfg *Config) (*Catalog, error) {
	data := embeddedProducts
	if cfg != nil && len(cfg.ProductsYAML) > 0 {
		data = cfg.ProductsYAML
	}

	products, err := LoadProducts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	guidelines := make(map[models.GuidelineBucket]*models.Guideline, len(defaultGuidelines))
	for _, g := range defaultGuidelines {
		guidelines[g.Bucket] = g
	}

	return &Catalog{
		guidelines: guidelines,
		products:   products,
	}, nil
}

// Classify places a beer into its guideline bucket
func (c *Catalog) Classify(alcoholPercentage, style string) (models.GuidelineBucket, bool) {
	return Classify(alcoholPercentage, style)
}

// Guideline returns a copy of the guideline for a bucket
func (c *Catalog) Guideline(bucket models.GuidelineBucket) (*models.Guideline, error) {
	g, ok := c.guidelines[bucket]
	if !ok {
		return nil, ErrUnknownBucket
	}

	out := *g
	return &out, nil
}

// Guidelines returns every guideline in display order
func (c *Catalog) Guidelines() []*models.Guideline {
	out := make([]*models.Guideline, 0, len(models.AllBuckets))
	for _, bucket := range models.AllBuckets {
		g := *c.guidelines[bucket]
		out = append(out, &g)
	}
	return out
}

// Limit returns the safe volume of a bucket for a profile, or models.NoLimit
func (c *Catalog) Limit(bucket models.GuidelineBucket, profile models.Profile) (int, error) {
	g, ok := c.guidelines[bucket]
	if !ok {
		return 0, ErrUnknownBucket
	}

	limit, ok := g.LimitFor(profile)
	if !ok {
		return 0, fmt.Errorf("no limit for profile %q", profile)
	}

	return limit, nil
}

// Product looks up a beer by name, ignoring case and surrounding space
func (c *Catalog) Product(name string) (*models.Product, error) {
	return c.products.Get(name)
}

// Products returns the known beers in table order
func (c *Catalog) Products() []*models.Product {
	return c.products.All()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
