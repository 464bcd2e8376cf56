package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Preference store backends
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config defines bot configuration.
type Config struct {
	Discord     DiscordConfig     `yaml:"discord"`
	Redis       RedisConfig       `yaml:"redis"`
	Preferences PreferencesConfig `yaml:"preferences"`
	Log         LogConfig         `yaml:"log"`
}

type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`

	// GuildID registers commands for a single server during development
	GuildID string `yaml:"guild_id"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PreferencesConfig struct {
	// Store is either "redis" or "memory"
	Store string `yaml:"store"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional .env file, an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Preferences: PreferencesConfig{
			Store: StoreRedis,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	envFile := os.Getenv("SIPTALLY_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if path := os.Getenv("SIPTALLY_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		cfg.Discord.Token = token
	}
	if appID := os.Getenv("APPLICATION_ID"); appID != "" {
		cfg.Discord.ApplicationID = appID
	}
	if guildID := os.Getenv("GUILD_ID"); guildID != "" {
		cfg.Discord.GuildID = guildID
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if store := os.Getenv("SIPTALLY_PREFERENCE_STORE"); store != "" {
		cfg.Preferences.Store = store
	}
	if level := os.Getenv("SIPTALLY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Validate checks that the configuration can start the bot.
func (c Config) Validate() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}

	switch c.Preferences.Store {
	case StoreRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis address is required for the redis preference store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown preference store %q", c.Preferences.Store)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// loadEnvFile loads variables from a .env file, a missing file is not an error.
// Variables already set in the environment win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
