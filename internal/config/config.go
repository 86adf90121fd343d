package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Data    DataConfig
	Bot     BotConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	GuildID string // Optional: restrict the bot to one guild
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: empty means in-memory storage
}

// DataConfig holds paths to the static data files
type DataConfig struct {
	DecksDir  string
	RulesFile string
}

// BotConfig holds chat command configuration
type BotConfig struct {
	CommandPrefix string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Data: DataConfig{
			DecksDir:  getEnvOrDefault("DECKS_DIR", "data/decks"),
			RulesFile: getEnvOrDefault("RULES_FILE", "data/rules.json"),
		},
		Bot: BotConfig{
			CommandPrefix: getEnvOrDefault("COMMAND_PREFIX", "."),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
