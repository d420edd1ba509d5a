package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool

	JWTSecret  string
	JWTIssuer  string
	APIKeyHash string // bcrypt hash of the service API key; empty disables x-api-key auth

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"

	PosthogAPIKey   string
	PosthogEndpoint string

	AMQPURL      string
	AMQPExchange string

	BaseCurrency               string
	JournalNumberPrefix        string
	JournalNumberAutoIncrement bool
	LedgerAutoPost             bool
	ShutdownTimeout            time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "manual-journal-service")
	viper.SetDefault("API_KEY_HASH", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "manual_journals")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("JOURNAL_NUMBER_PREFIX", "MJ-")
	viper.SetDefault("JOURNAL_NUMBER_AUTO_INCREMENT", true)
	viper.SetDefault("LEDGER_AUTO_POST", true)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:                viper.GetString("PGSQL_URL"),
		MigrationsPath:             viper.GetString("MIGRATIONS_PATH"),
		Port:                       viper.GetString("PORT"),
		IsProduction:               viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:              viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                  viper.GetString("JWT_SECRET"),
		JWTIssuer:                  viper.GetString("JWT_ISSUER"),
		APIKeyHash:                 viper.GetString("API_KEY_HASH"),
		CORSAllowedOrigins:         splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:                  viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:              viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:            viper.GetString("POSTHOG_ENDPOINT"),
		AMQPURL:                    viper.GetString("AMQP_URL"),
		AMQPExchange:               viper.GetString("AMQP_EXCHANGE"),
		BaseCurrency:               strings.ToUpper(viper.GetString("BASE_CURRENCY")),
		JournalNumberPrefix:        viper.GetString("JOURNAL_NUMBER_PREFIX"),
		JournalNumberAutoIncrement: viper.GetBool("JOURNAL_NUMBER_AUTO_INCREMENT"),
		LedgerAutoPost:             viper.GetBool("LEDGER_AUTO_POST"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid BASE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "USD"
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout.String())
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Manual journal events will not be published to a broker.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
