package messaging

import (
	"github.com/KirkDiggler/siptally/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed fixes message selection for tests, zero uses the clock
	Seed int64
}

// GetDrinkLoggedMessageInput contains parameters for a drink confirmation
type GetDrinkLoggedMessageInput struct {
	// Entry is the drink that was logged
	Entry *models.BeverageEntry

	// UnknownProduct is true when the named beer was not recognised
	UnknownProduct bool

	// RequestedProduct is the product name the user asked for
	RequestedProduct string

	// Summary is the ledger state after logging
	Summary *models.ConsumptionSummary

	// Tone is optional, ToneFunny by default
	Tone MessageTone
}

// GetDrinkLoggedMessageOutput contains a drink confirmation
type GetDrinkLoggedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetLimitWarningMessageInput contains parameters for a limit warning
type GetLimitWarningMessageInput struct {
	// Guideline is the guideline whose limit was crossed
	Guideline *models.Guideline

	// Crossing is the evaluation that reported the crossing
	Crossing *models.CrossingResult

	// Tone is optional, ToneNeutral by default
	Tone MessageTone
}

// GetLimitWarningMessageOutput contains a limit warning
type GetLimitWarningMessageOutput struct {
	Title   string
	Message string

	// Advice is a randomly chosen follow-up line
	Advice string
}

// GetEmptyLogMessageInput contains parameters for the empty log message
type GetEmptyLogMessageInput struct {
	// Tone is optional, ToneFunny by default
	Tone MessageTone
}

// GetEmptyLogMessageOutput contains the empty log message
type GetEmptyLogMessageOutput struct {
	Message string
}

// GetProfilePromptMessageInput contains parameters for the profile prompt
type GetProfilePromptMessageInput struct{}

// GetProfilePromptMessageOutput contains the profile prompt
type GetProfilePromptMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// Err is the error returned by a service
	Err error
}

// GetErrorMessageOutput contains a user-friendly error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
