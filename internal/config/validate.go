package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for errors.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Discord.Token == "" || strings.HasPrefix(cfg.Discord.Token, "${") {
		errs = append(errs, "discord.token is required (set DISCORD_TOKEN)")
	}
	if cfg.Discord.Prefix == "" {
		errs = append(errs, "discord.prefix must not be empty")
	}
	if cfg.Discord.CategoryName == "" {
		errs = append(errs, "discord.categoryName must not be empty")
	}
	if cfg.Discord.CloseDelay < 0 {
		errs = append(errs, "discord.closeDelay must not be negative")
	}

	if cfg.Server.HealthPort <= 0 || cfg.Server.HealthPort > 65535 {
		errs = append(errs, "server.healthPort must be between 1 and 65535")
	}

	if cfg.Slack.Enabled {
		if cfg.Slack.BotToken == "" {
			errs = append(errs, "slack.botToken is required when slack is enabled")
		}
		if cfg.Slack.Channel == "" {
			errs = append(errs, "slack.channel is required when slack is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
