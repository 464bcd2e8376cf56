package tally

// TallyError is a custom error type for tally errors
type TallyError string

// Error implements the error interface
func (e TallyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          TallyError = "config cannot be nil"
	ErrNilPreferenceRepo  TallyError = "preference repository cannot be nil"
	ErrNilSessionRepo     TallyError = "session repository cannot be nil"
	ErrNilCatalog         TallyError = "catalog cannot be nil"
	ErrNilClock           TallyError = "clock cannot be nil"
	ErrNilUUIDGenerator   TallyError = "UUID generator cannot be nil"
	ErrNilInput           TallyError = "input cannot be nil"
	ErrEmptyUserID        TallyError = "user ID cannot be empty"
	ErrEmptyEntryID       TallyError = "entry ID cannot be empty"
	ErrProfileNotSet      TallyError = "choose a profile before logging drinks"
	ErrInvalidProfile     TallyError = "invalid profile"
	ErrInvalidCategory    TallyError = "invalid beverage category"
	ErrProductOnlyForBeer TallyError = "only beers can name a product"
)
