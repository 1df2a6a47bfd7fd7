package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=payagent
//	POSTGRES_SSLMODE=disable
//	MARKET_BASE_URL=https://api.coingecko.com/api/v3
//	MARKET_MA_WINDOW_DAYS=50
//	PAYMENT_BASE_URL=https://gateway.example.com
//	PAYMENT_API_KEY=secret
//	NEGOTIATION_BASE_PROBABILITY=0.6
//	NEGOTIATION_ROUND_DECAY=0.85
type Config struct {
	Server      ServerConfig      // HTTP server configuration
	Postgres    PostgresConfig    // PostgreSQL connection settings (decision audit log)
	Market      MarketConfig      // market-data provider settings
	Payment     PaymentConfig     // payment gateway settings
	Negotiation NegotiationConfig // bargaining model tuning
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// MarketConfig points the core at the market-data provider.
type MarketConfig struct {
	BaseURL      string
	MAWindowDays int // trailing window for the moving-average baseline
}

// PaymentConfig points the core at the payment gateway.
type PaymentConfig struct {
	BaseURL string
	APIKey  string
}

// NegotiationConfig tunes the bargaining model; the curve shape is a
// parameter, not a law.
type NegotiationConfig struct {
	BaseProbability float64
	RoundDecay      float64
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig(). The core receives collaborator credentials from
// here at construction time, never from ambient state at call time.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (lowest to highest): defaults, .env file (if present),
// environment variables. Missing required variables terminate the app via
// validateConfig().
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "payagent")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("MARKET_BASE_URL", "https://api.coingecko.com/api/v3")
	viper.SetDefault("MARKET_MA_WINDOW_DAYS", 50)

	viper.SetDefault("PAYMENT_BASE_URL", "http://localhost:9090")
	viper.SetDefault("PAYMENT_API_KEY", "")

	viper.SetDefault("NEGOTIATION_BASE_PROBABILITY", 0.6)
	viper.SetDefault("NEGOTIATION_ROUND_DECAY", 0.85)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Market: MarketConfig{
			BaseURL:      viper.GetString("MARKET_BASE_URL"),
			MAWindowDays: viper.GetInt("MARKET_MA_WINDOW_DAYS"),
		},
		Payment: PaymentConfig{
			BaseURL: viper.GetString("PAYMENT_BASE_URL"),
			APIKey:  viper.GetString("PAYMENT_API_KEY"),
		},
		Negotiation: NegotiationConfig{
			BaseProbability: viper.GetFloat64("NEGOTIATION_BASE_PROBABILITY"),
			RoundDecay:      viper.GetFloat64("NEGOTIATION_ROUND_DECAY"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Market.BaseURL == "" {
		missing = append(missing, "MARKET_BASE_URL")
	}
	if AppConfig.Payment.BaseURL == "" {
		missing = append(missing, "PAYMENT_BASE_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
