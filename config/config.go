// Package config manages application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey indicates no YouTube API key was configured. Nothing can
// be fetched without one, so this is fatal at startup.
var ErrMissingAPIKey = errors.New("YOUTUBE_API_KEY is not set")

// Config holds all application configuration.
type Config struct {
	// APIKey authenticates YouTube Data API calls. Environment only, never
	// read from or written to the config file.
	APIKey string `json:"-"`
	// ChannelID is the channel whose streams are ingested.
	ChannelID string `json:"channel_id"`
	// DataDir is the root of the JSON data files.
	DataDir string `json:"data_dir"`
	// KaraokeKeyword filters channel videos down to karaoke streams by
	// title substring.
	KaraokeKeyword string `json:"karaoke_keyword"`
	// VideoDelay is the courtesy pause between videos in batch runs.
	VideoDelay time.Duration `json:"video_delay"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir:        "public",
		KaraokeKeyword: "歌枠",
		VideoDelay:     2 * time.Second,
	}
}

// Load builds configuration from defaults, an optional config file, an
// optional .env file, and environment variables, in increasing priority.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := cfg.loadFromFile(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	cfg.loadFromEnv()
	return cfg, nil
}

// loadFromFile attempts setlist.json in the current directory, then in the
// user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"setlist.json",
		filepath.Join(os.Getenv("HOME"), ".config", "setlist", "setlist.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YOUTUBE_CHANNEL_ID"); v != "" {
		c.ChannelID = v
	}
	if v := os.Getenv("SETLIST_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SETLIST_KARAOKE_KEYWORD"); v != "" {
		c.KaraokeKeyword = v
	}
	if v := os.Getenv("SETLIST_VIDEO_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.VideoDelay = d
		}
	}
}

// RequireAPIKey validates that an API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
