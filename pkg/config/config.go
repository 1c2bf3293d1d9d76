package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration

	// Gateway integration
	GatewayBaseURL string
	GatewayAPIKey  string
	WebhookSecret  string
	// WebhookRateLimit uses the limiter format, e.g. "120-M" for 120/minute.
	WebhookRateLimit string

	// Analytics
	PosthogAPIKey string
	PosthogHost   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("GATEWAY_BASE_URL", "")
	viper.SetDefault("GATEWAY_API_KEY", "")
	viper.SetDefault("WEBHOOK_SECRET", "")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", "120-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://app.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.GatewayBaseURL = viper.GetString("GATEWAY_BASE_URL")
	cfg.GatewayAPIKey = viper.GetString("GATEWAY_API_KEY")
	if cfg.GatewayBaseURL == "" {
		log.Println("Warning: GATEWAY_BASE_URL not set. Gateway calls will fail; demo fallback applies outside production.")
	}

	cfg.WebhookSecret = viper.GetString("WEBHOOK_SECRET")
	if cfg.WebhookSecret == "" {
		log.Println("Warning: WEBHOOK_SECRET not set. Incoming webhooks cannot be verified.")
	}
	cfg.WebhookRateLimit = viper.GetString("WEBHOOK_RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogHost = viper.GetString("POSTHOG_HOST")

	return cfg, nil
}
