package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Slack   SlackConfig   `yaml:"slack"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type DiscordConfig struct {
	// Token is the bot authentication token, normally supplied via
	// ${DISCORD_TOKEN} in the config file.
	Token  string `yaml:"token"`
	Prefix string `yaml:"prefix"`
	// CategoryName is the provisioning container for ticket channels.
	CategoryName string `yaml:"categoryName"`
	// LogChannel is the audit log destination, resolved by name.
	LogChannel string `yaml:"logChannel"`
	// CloseDelay is the grace period before a closed channel is deleted.
	CloseDelay time.Duration `yaml:"closeDelay"`
}

type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"botToken"`
	Channel  string `yaml:"channel"`
}

type ServerConfig struct {
	HealthPort      int           `yaml:"healthPort"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Discord: DiscordConfig{
			Prefix:       ".",
			CategoryName: "Tickets",
			LogChannel:   "ticket-logs",
			CloseDelay:   5 * time.Second,
		},
		Slack: SlackConfig{
			Enabled: false,
			Channel: "#ticket-activity",
		},
		Server: ServerConfig{
			HealthPort:      9090,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// expandEnvVars replaces ${VAR} patterns with environment variable values.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		return "${" + key + "}"
	})
}
