package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSearchURL = "https://query1.finance.yahoo.com/v1/finance/search"

type Config struct {
	SearchBaseURL string        `json:"search_base_url"`
	SearchTimeout time.Duration `json:"search_timeout"`
	UserAgent     string        `json:"user_agent"`
	Debug         bool          `json:"debug"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		SearchBaseURL: defaultSearchURL,
		SearchTimeout: 10 * time.Second,
		UserAgent:     "TradeDeskCLI/1.0",
		Debug:         false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	// Override with environment variables if they exist
	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("TRADEDESK_SEARCH_URL"); val != "" {
		c.SearchBaseURL = val
	}
	if val := os.Getenv("TRADEDESK_SEARCH_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.SearchTimeout = d
		}
	}
	if val := os.Getenv("TRADEDESK_USER_AGENT"); val != "" {
		c.UserAgent = val
	}
	if val := os.Getenv("TRADEDESK_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}
