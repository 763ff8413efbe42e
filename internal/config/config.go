// Package config loads the bot configuration: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"blight/internal/common"

	"gopkg.in/yaml.v3"
)

type ListMessage struct {
	ChannelID string `yaml:"channel_id"`
	MessageID string `yaml:"message_id"`
}

type Config struct {
	Token         string `yaml:"token"`
	AllowedUserID string `yaml:"allowed_user_id"`
	GuildID       string `yaml:"guild_id"`

	// Messages holding the lists in the guild
	Allies  ListMessage `yaml:"allies"`
	Enemies ListMessage `yaml:"enemies"`

	StickerEmoji string `yaml:"sticker_emoji"`
	ImageURL     string `yaml:"image_url"`
	Contact      string `yaml:"contact"`

	// DM bindings are kept in memory when empty
	RedisURL string `yaml:"redis_url"`

	LogLevel string `yaml:"log_level"`

	// Per user limits on edits and random builds
	Restrictions []common.Restriction `yaml:"restrictions"`
	Housekeeping time.Duration        `yaml:"housekeeping"`
}

func Default() Config {
	return Config{
		AllowedUserID: "1372549650225168436",
		GuildID:       "1431718345903702172",
		Allies:        ListMessage{ChannelID: "1431742381048463390", MessageID: "1431996823316463730"},
		Enemies:       ListMessage{ChannelID: "1431742381048463390", MessageID: "1431996824427696262"},
		StickerEmoji:  "<:stickerherta:1431751497435054093>",
		ImageURL:      "https://i.imgur.com/r5erfnY.jpeg",
		Contact:       "lunaciaaaaa",
		LogLevel:      "info",
		Restrictions:  []common.Restriction{{Requests: 5, Duration: 10 * time.Second}},
		Housekeeping:  10 * time.Minute,
	}
}

// Load reads the file named by BLIGHT_CONFIG if set, and applies the
// environment on top of it
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("BLIGHT_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

// LoadFile overrides the values present in the YAML file
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) ApplyEnv() {
	cfg.Token = getenv("DISCORD_TOKEN", cfg.Token)
	cfg.AllowedUserID = getenv("BLIGHT_ALLOWED_USER_ID", cfg.AllowedUserID)
	cfg.GuildID = getenv("BLIGHT_GUILD_ID", cfg.GuildID)
	cfg.Allies.ChannelID = getenv("BLIGHT_ALLIES_CHANNEL_ID", cfg.Allies.ChannelID)
	cfg.Allies.MessageID = getenv("BLIGHT_ALLIES_MESSAGE_ID", cfg.Allies.MessageID)
	cfg.Enemies.ChannelID = getenv("BLIGHT_ENEMIES_CHANNEL_ID", cfg.Enemies.ChannelID)
	cfg.Enemies.MessageID = getenv("BLIGHT_ENEMIES_MESSAGE_ID", cfg.Enemies.MessageID)
	cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
	cfg.LogLevel = getenv("BLIGHT_LOG_LEVEL", cfg.LogLevel)
}

func (cfg *Config) Validate() error {
	if cfg.Token == "" {
		return errors.New("discord token is required (DISCORD_TOKEN)")
	}
	if cfg.AllowedUserID == "" {
		return errors.New("allowed user id is required")
	}
	for _, restriction := range cfg.Restrictions {
		if restriction.Requests <= 0 || restriction.Duration <= 0 {
			return fmt.Errorf("invalid restriction of %d requests in %s", restriction.Requests, restriction.Duration)
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
