package models

// CrossingResult is the outcome of checking one bucket against its limit
type CrossingResult struct {
	// Bucket is the guideline bucket that was evaluated
	Bucket GuidelineBucket

	// Profile is the profile whose limit was used
	Profile Profile

	// Crossed is true when ActualML strictly exceeds LimitML
	Crossed bool

	// LimitML is the safe volume for the profile, or NoLimit
	LimitML int

	// ActualML is the summed volume currently logged in the bucket
	ActualML int
}
