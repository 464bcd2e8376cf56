package models

// Profile is the demographic profile used to pick a guideline limit
type Profile string

const (
	// ProfileUnset means no profile has been chosen yet
	ProfileUnset Profile = ""

	// ProfileA selects the first limit of each guideline ("male" in the reference tables)
	ProfileA Profile = "male"

	// ProfileB selects the second limit of each guideline ("female" in the reference tables)
	ProfileB Profile = "female"
)

// IsValid reports whether the profile is one of the two selectable profiles
func (p Profile) IsValid() bool {
	return p == ProfileA || p == ProfileB
}

// IsSet reports whether a profile has been chosen
func (p Profile) IsSet() bool {
	return p != ProfileUnset
}

// ParseProfile converts a stored or user supplied value into a Profile.
// Unknown values map to ProfileUnset.
func ParseProfile(value string) Profile {
	switch Profile(value) {
	case ProfileA:
		return ProfileA
	case ProfileB:
		return ProfileB
	default:
		return ProfileUnset
	}
}
