package main

import (
	"fmt"
	"os"
	"time"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

const (
	EnvBotToken       = "DISCORD_BOT_TOKEN"
	EnvAlertChannelID = "DISCORD_ALERT_CHANNEL_ID"
)

// Config represents the Discord bot configuration
type Config struct {
	Discord          DiscordConfig `yaml:"discord"`
	Bot              BotConfig     `yaml:"bot"`
	GlobalConfigPath string        `yaml:"global_config_path"`
}

// DiscordConfig contains Discord-specific settings
type DiscordConfig struct {
	Token string `yaml:"token"`
	// GuildID limits slash commands to one guild; empty registers them globally.
	GuildID string `yaml:"guild_id"`
	// AlertChannelID receives the lightly protected alert, in addition to the alert webhook.
	AlertChannelID string `yaml:"alert_channel_id"`
}

// BotConfig contains bot behavior settings
type BotConfig struct {
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	AnalysisTimeout time.Duration   `yaml:"analysis_timeout"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	CommandsPerMinute int `yaml:"commands_per_minute"`
	BurstLimit        int `yaml:"burst_limit"`
}

// getDefaultConfig returns default configuration
func getDefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			RateLimit: RateLimitConfig{
				CommandsPerMinute: 10,
				BurstLimit:        3,
			},
			AnalysisTimeout: 30 * time.Second,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file means
// defaults, so a token in the environment is enough to run the bot.
func LoadConfig(configPath string) (*Config, error) {
	config := getDefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config YAML: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if token := os.Getenv(EnvBotToken); token != "" {
		config.Discord.Token = token
	}
	if channelID := os.Getenv(EnvAlertChannelID); channelID != "" {
		config.Discord.AlertChannelID = channelID
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Discord.Token == "" {
		return errorwrapper.NewValidationError("discord.token", "", "discord token is required (set "+EnvBotToken+" environment variable)")
	}
	if config.Bot.RateLimit.CommandsPerMinute < 1 {
		return errorwrapper.NewValidationError("bot.rate_limit.commands_per_minute", config.Bot.RateLimit.CommandsPerMinute, "must be at least 1")
	}
	if config.Bot.RateLimit.BurstLimit < 1 {
		return errorwrapper.NewValidationError("bot.rate_limit.burst_limit", config.Bot.RateLimit.BurstLimit, "must be at least 1")
	}
	if config.Bot.AnalysisTimeout <= 0 {
		return errorwrapper.NewValidationError("bot.analysis_timeout", config.Bot.AnalysisTimeout, "must be positive")
	}
	return nil
}
