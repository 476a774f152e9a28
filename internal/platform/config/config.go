package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	RedisAddr     string

	// Exchange-rate pipeline
	RateSource         string // upstream provider selector: "er-api" or "currency-api"
	RateCacheTTL       time.Duration
	ERAPIBaseURL       string
	CurrencyAPIBaseURL string

	// Billing presentation
	DefaultCurrency string
	BreakdownLimit  int

	// API protection
	AuthEnabled bool
	JWTSecret   string
	RateLimit   string // ulule/limiter format, e.g. "120-M"

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("RATE_SOURCE", "er-api")
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("RATE_ERAPI_URL", "https://api.exchangerate-api.com/v4/latest/USD")
	viper.SetDefault("RATE_CURRENCY_API_URL", "https://latest.currency-api.pages.dev/v1/currencies/usd.json")
	viper.SetDefault("DEFAULT_DISPLAY_CURRENCY", "CNY")
	viper.SetDefault("BREAKDOWN_LIMIT", 10)
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")

	cfg.RateSource = viper.GetString("RATE_SOURCE")
	ttlStr := viper.GetString("RATE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.RateCacheTTL = ttl
	cfg.ERAPIBaseURL = viper.GetString("RATE_ERAPI_URL")
	cfg.CurrencyAPIBaseURL = viper.GetString("RATE_CURRENCY_API_URL")

	cfg.DefaultCurrency = viper.GetString("DEFAULT_DISPLAY_CURRENCY")
	cfg.BreakdownLimit = viper.GetInt("BREAKDOWN_LIMIT")

	cfg.AuthEnabled = viper.GetBool("AUTH_ENABLED")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Println("Warning: AUTH_ENABLED is set but JWT_SECRET is empty. All API requests will be rejected.")
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Falling back to the in-memory node repository.")
	}
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Falling back to the in-memory preference store.")
	}

	return cfg, nil
}
