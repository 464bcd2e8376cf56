package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/siptally/internal/services/tally"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting message variants
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetDrinkLoggedMessage returns a confirmation for a logged drink
func (s *service) GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.New("input and entry cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneFunny
	}

	message := fmt.Sprintf("Logged %s (%d ml).", input.Entry.DisplayName(), input.Entry.VolumeML)
	if input.UnknownProduct {
		message += fmt.Sprintf(" I don't know %q, so it counts toward your total but no beer guideline.", input.RequestedProduct)
	}

	if input.Summary != nil {
		message += fmt.Sprintf(" Today's total: %d ml.", input.Summary.TotalML)
	}

	var extras []string
	switch tone {
	case ToneFunny:
		extras = []string{
			"Cheers! 🍻",
			"Noted. Your liver has been informed.",
			"Another one for the tally!",
			"Sip smart, friend.",
		}
	case ToneEncouraging:
		extras = []string{
			"Remember to drink some water too 💧",
			"Pace yourself, you're doing fine.",
			"Enjoy it slowly!",
		}
	}

	if len(extras) > 0 {
		message += " " + s.pick(extras)
	}

	return &GetDrinkLoggedMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetLimitWarningMessage returns the warning shown when a guideline limit is crossed
func (s *service) GetLimitWarningMessage(ctx context.Context, input *GetLimitWarningMessageInput) (*GetLimitWarningMessageOutput, error) {
	if input == nil || input.Guideline == nil || input.Crossing == nil {
		return nil, errors.New("input, guideline and crossing cannot be nil")
	}

	if !input.Crossing.Crossed {
		return nil, errors.New("limit was not crossed")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	var advice []string
	switch tone {
	case ToneFunny:
		advice = []string{
			"Maybe switch to water for a round? 🚰",
			"Your future self is already writing a strongly worded letter.",
			"Time for a snack break!",
		}
	case ToneEncouraging:
		advice = []string{
			"Consider slowing down and having some water.",
			"A break now will make tomorrow a lot nicer.",
			"You've got this, take it easy for the rest of the day.",
		}
	default:
		advice = []string{
			"Consider stopping or switching to alcohol-free drinks.",
			"Consider drinking water before your next drink.",
		}
	}

	return &GetLimitWarningMessageOutput{
		Title: "Limit exceeded",
		Message: fmt.Sprintf("You have had %d ml of %s; the recommended limit is %d ml.",
			input.Crossing.ActualML, input.Guideline.Label, input.Crossing.LimitML),
		Advice: s.pick(advice),
	}, nil
}

// GetEmptyLogMessage returns the message shown when nothing has been logged yet
func (s *service) GetEmptyLogMessage(ctx context.Context, input *GetEmptyLogMessageInput) (*GetEmptyLogMessageOutput, error) {
	tone := ToneFunny
	if input != nil && input.Tone != "" {
		tone = input.Tone
	}

	var messages []string
	switch tone {
	case ToneFunny:
		messages = []string{
			"Nothing logged yet. The night is young! 🌙",
			"Your tally is empty. Suspiciously sober.",
			"No drinks so far. Use `/sip beer` when you get one.",
		}
	default:
		messages = []string{
			"You haven't logged any drinks yet.",
		}
	}

	return &GetEmptyLogMessageOutput{Message: s.pick(messages)}, nil
}

// GetProfilePromptMessage returns the prompt asking a user to pick a profile
func (s *service) GetProfilePromptMessage(ctx context.Context, input *GetProfilePromptMessageInput) (*GetProfilePromptMessageOutput, error) {
	return &GetProfilePromptMessageOutput{
		Title:   "Choose your profile",
		Message: "Safe limits depend on your profile. Use `/sip profile` to choose male or female before logging drinks.",
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return &GetErrorMessageOutput{
			Title:   "Error",
			Message: "Something went wrong.",
		}, nil
	}

	switch {
	case errors.Is(input.Err, tally.ErrProfileNotSet):
		prompt, err := s.GetProfilePromptMessage(ctx, &GetProfilePromptMessageInput{})
		if err != nil {
			return nil, err
		}
		return &GetErrorMessageOutput{Title: prompt.Title, Message: prompt.Message}, nil
	case errors.Is(input.Err, tally.ErrInvalidProfile):
		return &GetErrorMessageOutput{Title: "Unknown profile", Message: "Pick either male or female."}, nil
	case errors.Is(input.Err, tally.ErrInvalidCategory):
		return &GetErrorMessageOutput{Title: "Unknown drink", Message: "You can log beer, wine or spirits."}, nil
	case errors.Is(input.Err, tally.ErrProductOnlyForBeer):
		return &GetErrorMessageOutput{Title: "Not a beer", Message: "Only beers can name a product."}, nil
	default:
		return &GetErrorMessageOutput{
			Title:   "Error",
			Message: s.pick([]string{
				"Something went wrong while updating your tally. Try again in a moment.",
				"Hmm, that didn't work. Give it another go.",
			}),
		}, nil
	}
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}
