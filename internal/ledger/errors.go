package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        LedgerError = "config cannot be nil"
	ErrNilCatalog       LedgerError = "catalog cannot be nil"
	ErrNilEntry         LedgerError = "entry cannot be nil"
	ErrEmptyEntryID     LedgerError = "entry ID cannot be empty"
	ErrDuplicateEntryID LedgerError = "entry ID already in ledger"
	ErrInvalidCategory  LedgerError = "invalid beverage category"
	ErrInvalidVolume    LedgerError = "volume does not match category"
	ErrUnexpectedBeer   LedgerError = "only beer entries carry product details"
	ErrProfileRequired  LedgerError = "a profile must be chosen before evaluating limits"
)
