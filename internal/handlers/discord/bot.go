package discord

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/siptally/internal/services/messaging"
	"github.com/KirkDiggler/siptally/internal/services/tally"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	tallyService     tally.Service
	messagingService messaging.Service
	logger           *slog.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	TallyService     tally.Service
	MessagingService messaging.Service

	// Logger is optional, slog.Default() is used when nil
	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
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

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		tallyService:     cfg.TallyService,
		messagingService: cfg.MessagingService,
		logger:           logger,
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	sipCmd, err := NewSipCommand(&SipCommandConfig{
		TallyService:     b.tallyService,
		MessagingService: b.messagingService,
		Logger:           b.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create sip command: %w", err)
	}

	if err := b.RegisterCommand(sipCmd); err != nil {
		return fmt.Errorf("failed to register sip command: %w", err)
	}

	b.logger.Info("bot is now running, press CTRL-C to exit")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.applicationID()

	// Without a guild ID the command is registered globally
	if b.config.GuildID != "" {
		b.logger.Info("registering command for guild", "command", cmd.GetName(), "guild_id", b.config.GuildID)
	} else {
		b.logger.Info("registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID)

	return nil
}

// applicationID falls back to the session user ID when no application ID is configured
func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction routes Discord interactions to the registered commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name].(AutocompleteHandler); ok {
			if err := h.HandleAutocomplete(s, i); err != nil {
				b.logger.Error("error handling autocomplete", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		for _, cmd := range b.commands {
			h, ok := cmd.(ComponentHandler)
			if !ok || !h.HandlesComponent(customID) {
				continue
			}
			if err := h.HandleComponent(s, i); err != nil {
				b.logger.Error("error handling component interaction", "custom_id", customID, "error", err)
			}
			return
		}
		b.logger.Warn("unhandled component interaction", "custom_id", customID)
	}
}
