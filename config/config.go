package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"dexViews/internal/adapters/logger" // Import the logger package for LogLevel
	"dexViews/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Active token pair. Addresses may be left empty: an incomplete pair is a
	// valid "nothing selected yet" state, not a configuration error.
	Token0Address string
	Token0Symbol  string
	Token1Address string
	Token1Symbol  string
	TokenDecimals int32 // smallest-unit scaling for both tokens, 18 for ERC-20

	// Caller identity for the my-open-orders view.
	AccountAddress string

	// Logging
	LogLevel logger.LogLevel

	// Output path for the candle CSV export tool.
	CandleCSVPath string
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []string // Collect validation errors

	cfg.Token0Address = getEnv("TOKEN0_ADDRESS", "")
	cfg.Token0Symbol = getEnv("TOKEN0_SYMBOL", "DAPP")
	cfg.Token1Address = getEnv("TOKEN1_ADDRESS", "")
	cfg.Token1Symbol = getEnv("TOKEN1_SYMBOL", "mETH")

	decimals, err := getEnvAsIntRequired("TOKEN_DECIMALS", 18)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TOKEN_DECIMALS: %v", err))
	} else if decimals <= 0 || decimals > 30 {
		errs = append(errs, "TOKEN_DECIMALS must be between 1 and 30")
	} else {
		cfg.TokenDecimals = int32(decimals)
	}

	cfg.AccountAddress = getEnv("ACCOUNT_ADDRESS", "")

	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	cfg.CandleCSVPath = getEnv("CANDLE_CSV_PATH", "./data/candles.csv")

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// TokenPair builds the active pair from the configured addresses. A token
// with an empty address stays unset.
func (c *Config) TokenPair() domain.TokenPair {
	var pair domain.TokenPair
	if c.Token0Address != "" {
		pair.Token0 = &domain.Token{Address: c.Token0Address, Symbol: c.Token0Symbol, Decimals: c.TokenDecimals}
	}
	if c.Token1Address != "" {
		pair.Token1 = &domain.Token{Address: c.Token1Address, Symbol: c.Token1Symbol, Decimals: c.TokenDecimals}
	}
	return pair
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
