package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/siptally/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetDrinkLoggedMessage returns a confirmation for a logged drink
	GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error)

	// GetLimitWarningMessage returns the warning shown when a guideline limit is crossed
	GetLimitWarningMessage(ctx context.Context, input *GetLimitWarningMessageInput) (*GetLimitWarningMessageOutput, error)

	// GetEmptyLogMessage returns the message shown when nothing has been logged yet
	GetEmptyLogMessage(ctx context.Context, input *GetEmptyLogMessageInput) (*GetEmptyLogMessageOutput, error)

	// GetProfilePromptMessage returns the prompt asking a user to pick a profile
	GetProfilePromptMessage(ctx context.Context, input *GetProfilePromptMessageInput) (*GetProfilePromptMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
