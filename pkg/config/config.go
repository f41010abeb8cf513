package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit uses the ulule/limiter formatted notation, e.g. "100-M".
	RateLimit string

	// AllowedOrigins is the CORS origin list.
	AllowedOrigins []string

	// Minimum opening balances by requested account type. These are policy
	// values, not code: savings defaults to 1000, current to 0.
	SavingsMinOpeningBalance decimal.Decimal
	CurrentMinOpeningBalance decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("SAVINGS_MIN_OPENING_BALANCE", "1000")
	viper.SetDefault("CURRENT_MIN_OPENING_BALANCE", "0")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")

	savingsMin, err := decimal.NewFromString(viper.GetString("SAVINGS_MIN_OPENING_BALANCE"))
	if err != nil {
		savingsMin = decimal.NewFromInt(1000)
		log.Printf("Warning: Invalid value for SAVINGS_MIN_OPENING_BALANCE. Defaulting to %s.\n", savingsMin.String())
	}
	cfg.SavingsMinOpeningBalance = savingsMin

	currentMin, err := decimal.NewFromString(viper.GetString("CURRENT_MIN_OPENING_BALANCE"))
	if err != nil {
		currentMin = decimal.Zero
		log.Printf("Warning: Invalid value for CURRENT_MIN_OPENING_BALANCE. Defaulting to %s.\n", currentMin.String())
	}
	cfg.CurrentMinOpeningBalance = currentMin

	return cfg, nil
}
