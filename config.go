package main

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	ChannelSecret string // LINE channel secret, used for webhook signature verification
	ChannelToken  string // LINE channel access token
	HostURL       string // externally reachable base URL, e.g. https://bot.example.com
	LiffID        string // LIFF app id for the add-favorites front end
	Port          string
	DBPath        string
	UploadDir     string
	SymbolFile    string
}

func LoadConfig() Config {
	return Config{
		ChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),
		ChannelToken:  os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		HostURL:       os.Getenv("HOST_URL"),
		LiffID:        os.Getenv("LIFF_ID"),
		Port:          envOrDefault("PORT", "9998"),
		DBPath:        envOrDefault("DB_PATH", "user_favorites.db"),
		UploadDir:     envOrDefault("UPLOAD_DIR", "static/uploads"),
		SymbolFile:    envOrDefault("SYMBOL_FILE", "docs/stock_name.csv"),
	}
}

func (c Config) Validate() error {
	if c.ChannelSecret == "" {
		return fmt.Errorf("LINE_CHANNEL_SECRET is required")
	}
	if c.ChannelToken == "" {
		return fmt.Errorf("LINE_CHANNEL_ACCESS_TOKEN is required")
	}
	if c.HostURL == "" {
		return fmt.Errorf("HOST_URL is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
