package models

// GuidelineBucket identifies one of the fixed beer guideline groups
type GuidelineBucket string

const (
	// BucketLightLager covers lagers up to 4.5% alcohol
	BucketLightLager GuidelineBucket = "light_lager"

	// BucketRegularLager covers standard 5% lagers and pilsners
	BucketRegularLager GuidelineBucket = "regular_lager"

	// BucketStrongLager covers lagers between 6% and 7%
	BucketStrongLager GuidelineBucket = "strong_lager"

	// BucketIpaCraft covers IPAs and strong craft beers
	BucketIpaCraft GuidelineBucket = "ipa_craft"

	// BucketStoutDark covers stouts and dark beers
	BucketStoutDark GuidelineBucket = "stout_dark"

	// BucketWheatBeer covers wheat beers
	BucketWheatBeer GuidelineBucket = "wheat_beer"

	// BucketAlcoholFree covers alcohol-free beers
	BucketAlcoholFree GuidelineBucket = "alcohol_free"
)

// NoLimit marks a guideline that never reports a crossing
const NoLimit = -1

// AllBuckets lists every bucket in display order
var AllBuckets = []GuidelineBucket{
	BucketLightLager,
	BucketRegularLager,
	BucketStrongLager,
	BucketIpaCraft,
	BucketStoutDark,
	BucketWheatBeer,
	BucketAlcoholFree,
}

// IsValid reports whether the bucket is one of the known buckets
func (b GuidelineBucket) IsValid() bool {
	for _, known := range AllBuckets {
		if b == known {
			return true
		}
	}
	return false
}

// Guideline is the safe intake recommendation for one bucket
type Guideline struct {
	// Bucket is the guideline group this entry describes
	Bucket GuidelineBucket

	// Label is the human readable name of the bucket
	Label string

	// Range is the typical alcohol percentage range, for display only
	Range string

	// LimitA is the safe volume in ml for ProfileA, or NoLimit
	LimitA int

	// LimitB is the safe volume in ml for ProfileB, or NoLimit
	LimitB int
}

// LimitFor returns the safe volume for the given profile.
// ok is false when the profile is unset or unknown.
func (g *Guideline) LimitFor(profile Profile) (limit int, ok bool) {
	switch profile {
	case ProfileA:
		return g.LimitA, true
	case ProfileB:
		return g.LimitB, true
	default:
		return 0, false
	}
}

// HasLimit reports whether the guideline enforces a limit at all
func (g *Guideline) HasLimit(profile Profile) bool {
	limit, ok := g.LimitFor(profile)
	return ok && limit != NoLimit
}
