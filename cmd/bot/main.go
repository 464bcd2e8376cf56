package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/siptally/internal/common/clock"
	"github.com/KirkDiggler/siptally/internal/common/uuid"
	"github.com/KirkDiggler/siptally/internal/config"
	"github.com/KirkDiggler/siptally/internal/guidelines"
	"github.com/KirkDiggler/siptally/internal/handlers/discord"
	"github.com/KirkDiggler/siptally/internal/repositories/preference"
	"github.com/KirkDiggler/siptally/internal/repositories/session"
	"github.com/KirkDiggler/siptally/internal/services/messaging"
	"github.com/KirkDiggler/siptally/internal/services/tally"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize the preference repository
	var preferenceRepo preference.Repository
	switch cfg.Preferences.Store {
	case config.StoreMemory:
		preferenceRepo = preference.NewMemory()
		logger.Warn("using in-memory preference store, profiles are lost on restart")
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		redisRepo, err := preference.NewRedis(&preference.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create preference repository: %v", err)
		}
		preferenceRepo = redisRepo
	}

	catalog, err := guidelines.New(&guidelines.Config{})
	if err != nil {
		log.Fatalf("Failed to load guideline catalog: %v", err)
	}

	// Initialize tally service
	tallySvc, err := tally.New(&tally.Config{
		PreferenceRepo: preferenceRepo,
		SessionRepo:    session.NewMemory(),
		Catalog:        catalog,
		Clock:          clock.New(),
		UUIDGenerator:  uuid.New(),
		Logger:         logger.With("component", "tally"),
	})
	if err != nil {
		log.Fatalf("Failed to create tally service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.Discord.Token,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		TallyService:     tallySvc,
		MessagingService: messagingSvc,
		Logger:           logger.With("component", "discord"),
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", "error", err)
	}

	logger.Info("bot has been shut down")
}
