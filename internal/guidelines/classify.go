package guidelines

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/siptally/internal/models"
)

var alcoholFreePattern = regexp.MustCompile(`(alcohol|alkoh).*fre|<\s*0\.\d+`)

// beerInput is what every classification rule sees
type beerInput struct {
	raw        string
	style      string
	percent    float64
	hasPercent bool
}

func (in beerInput) styleHas(keyword string) bool {
	return strings.Contains(in.style, keyword)
}

// rule maps a predicate to the bucket it selects
type rule struct {
	name   string
	match  func(in beerInput) bool
	bucket func(in beerInput) models.GuidelineBucket
}

func always(b models.GuidelineBucket) func(beerInput) models.GuidelineBucket {
	return func(beerInput) models.GuidelineBucket { return b }
}

// rules are evaluated top to bottom and the first match wins.
// 4.5 < x < 5 and 5.4 < x < 6 match no numeric rule on purpose.
var rules = []rule{
	{
		name:   "style ipa",
		match:  func(in beerInput) bool { return in.styleHas("ipa") },
		bucket: always(models.BucketIpaCraft),
	},
	{
		name:   "style wheat",
		match:  func(in beerInput) bool { return in.styleHas("wheat") },
		bucket: always(models.BucketWheatBeer),
	},
	{
		name:   "style stout",
		match:  func(in beerInput) bool { return in.styleHas("stout") },
		bucket: always(models.BucketStoutDark),
	},
	{
		name:   "at most 4.5%",
		match:  func(in beerInput) bool { return in.hasPercent && in.percent <= 4.5 },
		bucket: always(models.BucketLightLager),
	},
	{
		name:   "exactly 5%",
		match:  func(in beerInput) bool { return in.hasPercent && in.percent == 5 },
		bucket: always(models.BucketRegularLager),
	},
	{
		name:  "above 5% up to 5.4%",
		match: func(in beerInput) bool { return in.hasPercent && in.percent > 5 && in.percent <= 5.4 },
		bucket: func(in beerInput) models.GuidelineBucket {
			if in.styleHas("wheat") {
				return models.BucketWheatBeer
			}
			return models.BucketRegularLager
		},
	},
	{
		name:   "6% to 7%",
		match:  func(in beerInput) bool { return in.hasPercent && in.percent >= 6 && in.percent <= 7 },
		bucket: always(models.BucketStrongLager),
	},
	{
		name:   "above 7%",
		match:  func(in beerInput) bool { return in.hasPercent && in.percent > 7 },
		bucket: always(models.BucketIpaCraft),
	},
	{
		name:   "alcohol free",
		match:  func(in beerInput) bool { return alcoholFreePattern.MatchString(in.raw) },
		bucket: always(models.BucketAlcoholFree),
	},
}

// Classify places a beer into its guideline bucket.
// ok is false when no rule matches; such beers count toward the overall
// total but toward no bucket.
func Classify(alcoholPercentage, style string) (bucket models.GuidelineBucket, ok bool) {
	percent, hasPercent := ParsePercentage(alcoholPercentage)
	in := beerInput{
		raw:        strings.ToLower(alcoholPercentage),
		style:      strings.ToLower(style),
		percent:    percent,
		hasPercent: hasPercent,
	}

	for _, r := range rules {
		if r.match(in) {
			return r.bucket(in), true
		}
	}

	return "", false
}

// ParsePercentage reads the number at the start of a strength label once
// everything but digits and periods is stripped. Stripping stops at the first
// separator after a digit, so "5.3–5.5%" and "5.3-5.5%" both yield 5.3.
// Periods ahead of the first digit are kept: "ca. 6%" reads as .6.
// ok is false when the stripped text does not start with a number.
func ParsePercentage(value string) (percent float64, ok bool) {
	var token strings.Builder
	seenDigit := false

	for _, r := range value {
		isDigit := r >= '0' && r <= '9'
		switch {
		case isDigit:
			seenDigit = true
			token.WriteRune(r)
		case r == '.':
			token.WriteRune(r)
		case seenDigit:
			return leadingNumber(token.String())
		}
	}

	return leadingNumber(token.String())
}

// leadingNumber parses the longest prefix of digits with at most one period.
// "1.2.3" yields 1.2 and ".4.8" yields 0.4.
func leadingNumber(token string) (float64, bool) {
	end := 0
	digits := 0
	seenPeriod := false

	for end < len(token) {
		c := token[end]
		if c == '.' {
			if seenPeriod {
				break
			}
			seenPeriod = true
		} else {
			digits++
		}
		end++
	}

	if digits == 0 {
		return 0, false
	}

	percent, err := strconv.ParseFloat(strings.TrimSuffix(token[:end], "."), 64)
	if err != nil {
		return 0, false
	}

	return percent, true
}
