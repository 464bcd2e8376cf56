package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/KirkDiggler/siptally/internal/services/messaging"
	"github.com/KirkDiggler/siptally/internal/services/tally"
	"github.com/bwmarrin/discordgo"
)

// Subcommand names
const (
	SubcommandProfile    = "profile"
	SubcommandBeer       = "beer"
	SubcommandWine       = "wine"
	SubcommandSpirits    = "spirits"
	SubcommandLog        = "log"
	SubcommandRemove     = "remove"
	SubcommandSummary    = "summary"
	SubcommandGuidelines = "guidelines"
	SubcommandBeers      = "beers"
	SubcommandReset      = "reset"
)

// Component custom ID prefixes, the suffix carries the argument
const (
	ButtonSetProfile = "sip_profile:"
	ButtonUndoDrink  = "sip_undo:"
)

// Discord allows at most 25 autocomplete choices
const maxChoices = 25

// SipCommandConfig holds the dependencies of the sip command
type SipCommandConfig struct {
	TallyService     tally.Service
	MessagingService messaging.Service

	// Logger is optional, slog.Default() is used when nil
	Logger *slog.Logger
}

// SipCommand handles the /sip command
type SipCommand struct {
	BaseCommand
	tallyService     tally.Service
	messagingService messaging.Service
	logger           *slog.Logger
}

// NewSipCommand creates a new sip command handler
func NewSipCommand(cfg *SipCommandConfig) (*SipCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TallyService == nil {
		return nil, errors.New("tally service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SipCommand{
		BaseCommand: BaseCommand{
			Name:        "sip",
			Description: "Track your drinks against safe intake guidelines",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandProfile,
					Description: "Choose the profile your limits are based on",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "profile",
							Description: "Your profile",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Male", Value: string(models.ProfileA)},
								{Name: "Female", Value: string(models.ProfileB)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBeer,
					Description: "Log a beer (330 ml)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "product",
							Description:  "Which beer",
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandWine,
					Description: "Log a glass of wine (150 ml)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSpirits,
					Description: "Log a shot of spirits (45 ml)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLog,
					Description: "Show the drinks logged today",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRemove,
					Description: "Remove a logged drink",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "id",
							Description:  "The drink to remove",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSummary,
					Description: "Show your totals against each guideline",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandGuidelines,
					Description: "Show the safe intake guidelines",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandBeers,
					Description: "Show the beers I know about",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReset,
					Description: "Clear today's log and start over",
				},
			},
		},
		tallyService:     cfg.TallyService,
		messagingService: cfg.MessagingService,
		logger:           logger,
	}, nil
}

// Handle processes a Discord interaction for the sip command
func (c *SipCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return ErrNoUser
	}

	response, err := c.Respond(context.Background(), user.ID, data.Options[0])
	if err != nil {
		c.logger.Error("failed to build sip response", "subcommand", data.Options[0].Name, "error", err)
		return RespondWithError(s, i, "Something went wrong, please try again.")
	}

	return RespondWithData(s, i, response)
}

// Respond builds the response to a sip subcommand
func (c *SipCommand) Respond(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	switch sub.Name {
	case SubcommandProfile:
		return c.handleProfile(ctx, userID, optionString(sub.Options, "profile"))
	case SubcommandBeer:
		return c.handleLogDrink(ctx, userID, models.CategoryBeer, strings.TrimSpace(optionString(sub.Options, "product")))
	case SubcommandWine:
		return c.handleLogDrink(ctx, userID, models.CategoryWine, "")
	case SubcommandSpirits:
		return c.handleLogDrink(ctx, userID, models.CategorySpirits, "")
	case SubcommandLog:
		return c.handleLog(ctx, userID)
	case SubcommandRemove:
		return c.handleRemove(ctx, userID, optionString(sub.Options, "id"))
	case SubcommandSummary:
		return c.handleSummary(ctx, userID)
	case SubcommandGuidelines:
		return c.handleGuidelines(ctx, userID)
	case SubcommandBeers:
		return c.handleBeers(ctx, userID)
	case SubcommandReset:
		return c.handleReset(ctx, userID)
	default:
		return nil, ErrUnknownSubcommand
	}
}

// HandleAutocomplete answers autocomplete requests for product names and entry IDs
func (c *SipCommand) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	user := interactionUser(i)
	if user == nil {
		return ErrNoUser
	}

	choices, err := c.Autocomplete(context.Background(), user.ID, data.Options[0])
	if err != nil {
		return err
	}

	return RespondWithChoices(s, i, choices)
}

// Autocomplete returns the choices for the focused option of a subcommand
func (c *SipCommand) Autocomplete(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	focused := focusedOption(sub.Options)
	typed := ""
	if focused != nil {
		if value, ok := focused.Value.(string); ok {
			typed = strings.ToLower(strings.TrimSpace(value))
		}
	}

	choices := []*discordgo.ApplicationCommandOptionChoice{}

	switch sub.Name {
	case SubcommandBeer:
		products, err := c.tallyService.ListProducts(ctx, &tally.ListProductsInput{})
		if err != nil {
			return nil, err
		}

		for _, info := range products.Products {
			if typed != "" && !strings.Contains(strings.ToLower(info.Product.Name), typed) {
				continue
			}
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  fmt.Sprintf("%s (%s)", info.Product.Name, info.Product.AlcoholPercentage),
				Value: info.Product.Name,
			})
		}
	case SubcommandRemove:
		logOutput, err := c.tallyService.GetLog(ctx, &tally.GetLogInput{UserID: userID})
		if err != nil {
			return nil, err
		}

		// Most recent drinks first
		for n := len(logOutput.Entries) - 1; n >= 0; n-- {
			entry := logOutput.Entries[n].Entry
			name := fmt.Sprintf("#%d %s at %s", n+1, entry.DisplayName(), entry.Timestamp.Format("15:04"))
			if typed != "" && !strings.Contains(strings.ToLower(name), typed) && !strings.HasPrefix(entry.ID, typed) {
				continue
			}
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  name,
				Value: entry.ID,
			})
		}
	}

	if len(choices) > maxChoices {
		choices = choices[:maxChoices]
	}

	return choices, nil
}

// HandlesComponent reports whether the custom ID belongs to the sip command
func (c *SipCommand) HandlesComponent(customID string) bool {
	return strings.HasPrefix(customID, ButtonSetProfile) || strings.HasPrefix(customID, ButtonUndoDrink)
}

// HandleComponent processes the profile and undo buttons
func (c *SipCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if user == nil {
		return ErrNoUser
	}

	customID := i.MessageComponentData().CustomID
	response, err := c.RespondToComponent(context.Background(), user.ID, customID)
	if err != nil {
		c.logger.Error("failed to build component response", "custom_id", customID, "error", err)
		return RespondWithError(s, i, "Something went wrong, please try again.")
	}

	return UpdateWithData(s, i, response)
}

// RespondToComponent builds the response to one of the sip buttons
func (c *SipCommand) RespondToComponent(ctx context.Context, userID, customID string) (*discordgo.InteractionResponseData, error) {
	switch {
	case strings.HasPrefix(customID, ButtonSetProfile):
		return c.handleProfile(ctx, userID, strings.TrimPrefix(customID, ButtonSetProfile))
	case strings.HasPrefix(customID, ButtonUndoDrink):
		return c.handleRemove(ctx, userID, strings.TrimPrefix(customID, ButtonUndoDrink))
	default:
		return nil, fmt.Errorf("unknown component %q", customID)
	}
}

// handleProfile shows the current profile or stores a new one
func (c *SipCommand) handleProfile(ctx context.Context, userID, value string) (*discordgo.InteractionResponseData, error) {
	if value == "" {
		current, err := c.tallyService.GetProfile(ctx, &tally.GetProfileInput{UserID: userID})
		if err != nil {
			return c.errorResponse(ctx, err)
		}

		return renderProfileChooser(current.Profile), nil
	}

	profile := models.ParseProfile(value)
	output, err := c.tallyService.SetProfile(ctx, &tally.SetProfileInput{
		UserID:  userID,
		Profile: profile,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return renderProfileSet(output.Profile), nil
}

// handleLogDrink logs a drink and warns when a limit is crossed
func (c *SipCommand) handleLogDrink(ctx context.Context, userID string, category models.Category, product string) (*discordgo.InteractionResponseData, error) {
	logged, err := c.tallyService.LogDrink(ctx, &tally.LogDrinkInput{
		UserID:      userID,
		Category:    category,
		ProductName: product,
	})
	if err != nil {
		if errors.Is(err, tally.ErrProfileNotSet) {
			prompt, promptErr := c.messagingService.GetProfilePromptMessage(ctx, &messaging.GetProfilePromptMessageInput{})
			if promptErr != nil {
				return nil, promptErr
			}
			response := renderProfileChooser(models.ProfileUnset)
			response.Embeds[0].Title = prompt.Title
			response.Embeds[0].Description = prompt.Message
			return response, nil
		}
		return c.errorResponse(ctx, err)
	}

	confirmation, err := c.messagingService.GetDrinkLoggedMessage(ctx, &messaging.GetDrinkLoggedMessageInput{
		Entry:            logged.Entry,
		UnknownProduct:   logged.UnknownProduct,
		RequestedProduct: product,
		Summary:          logged.Summary,
	})
	if err != nil {
		return nil, err
	}

	var warning *messaging.GetLimitWarningMessageOutput
	if logged.Crossing != nil && logged.Crossing.Crossed && logged.Guideline != nil {
		warning, err = c.messagingService.GetLimitWarningMessage(ctx, &messaging.GetLimitWarningMessageInput{
			Guideline: logged.Guideline,
			Crossing:  logged.Crossing,
		})
		if err != nil {
			return nil, err
		}
	}

	return renderDrinkLogged(logged, confirmation.Message, warning), nil
}

// handleLog shows the drinks of the current session
func (c *SipCommand) handleLog(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	logOutput, err := c.tallyService.GetLog(ctx, &tally.GetLogInput{UserID: userID})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	if len(logOutput.Entries) == 0 {
		empty, err := c.messagingService.GetEmptyLogMessage(ctx, &messaging.GetEmptyLogMessageInput{})
		if err != nil {
			return nil, err
		}
		return renderNotice("Today's drinks", empty.Message), nil
	}

	guidelines, err := c.tallyService.ListGuidelines(ctx, &tally.ListGuidelinesInput{})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return renderLog(logOutput, labelsByBucket(guidelines.Guidelines)), nil
}

// handleRemove removes a drink from the current session
func (c *SipCommand) handleRemove(ctx context.Context, userID, entryID string) (*discordgo.InteractionResponseData, error) {
	removed, err := c.tallyService.RemoveDrink(ctx, &tally.RemoveDrinkInput{
		UserID:  userID,
		EntryID: strings.TrimSpace(entryID),
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	if !removed.Removed {
		return renderNotice("Nothing removed", "That drink isn't in today's log."), nil
	}

	description := fmt.Sprintf("Removed %s (%d ml).", removed.Entry.DisplayName(), removed.Entry.VolumeML)
	if removed.Summary != nil {
		description += fmt.Sprintf(" Today's total: %d ml.", removed.Summary.TotalML)
	}

	return renderNotice("Drink removed", description), nil
}

// handleSummary shows the totals against every guideline
func (c *SipCommand) handleSummary(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	summary, err := c.tallyService.GetSummary(ctx, &tally.GetSummaryInput{UserID: userID})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	response := renderSummary(summary)
	if !summary.Profile.IsSet() {
		prompt, err := c.messagingService.GetProfilePromptMessage(ctx, &messaging.GetProfilePromptMessageInput{})
		if err != nil {
			return nil, err
		}
		response.Embeds[0].Description = prompt.Message
	}

	return response, nil
}

// handleGuidelines shows the guideline table
func (c *SipCommand) handleGuidelines(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	guidelines, err := c.tallyService.ListGuidelines(ctx, &tally.ListGuidelinesInput{UserID: userID})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return renderGuidelines(guidelines), nil
}

// handleBeers shows the known products with their guideline
func (c *SipCommand) handleBeers(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	products, err := c.tallyService.ListProducts(ctx, &tally.ListProductsInput{})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	guidelines, err := c.tallyService.ListGuidelines(ctx, &tally.ListGuidelinesInput{})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	return renderProducts(products, labelsByBucket(guidelines.Guidelines)), nil
}

// handleReset discards today's log and starts a fresh session
func (c *SipCommand) handleReset(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	ended, err := c.tallyService.EndSession(ctx, &tally.EndSessionInput{UserID: userID})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	if _, err := c.tallyService.StartSession(ctx, &tally.StartSessionInput{UserID: userID}); err != nil {
		return c.errorResponse(ctx, err)
	}

	description := "Your log is empty. Fresh start!"
	if ended.Ended && ended.Summary != nil && ended.Summary.EntryCount > 0 {
		description = fmt.Sprintf("Cleared %d drinks (%d ml). Fresh start!", ended.Summary.EntryCount, ended.Summary.TotalML)
	}

	return renderNotice("Log reset", description), nil
}

// errorResponse turns a service error into an ephemeral error embed
func (c *SipCommand) errorResponse(ctx context.Context, err error) (*discordgo.InteractionResponseData, error) {
	c.logger.Warn("sip command failed", "error", err)

	message, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return nil, msgErr
	}

	return errorResponse(message.Title, message.Message), nil
}

func labelsByBucket(guidelines []*models.Guideline) map[models.GuidelineBucket]string {
	labels := make(map[models.GuidelineBucket]string, len(guidelines))
	for _, g := range guidelines {
		labels[g.Bucket] = g.Label
	}
	return labels
}
