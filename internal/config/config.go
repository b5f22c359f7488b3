package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the app.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Auth    AuthConfig
	Latency LatencyConfig
}

// AppConfig controls process level behavior.
type AppConfig struct {
	Name string
	Env  string
}

// StorageConfig locates the local key-value substrate.
type StorageConfig struct {
	Path string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session token parameters.
type AuthConfig struct {
	TokenSecret     string
	TokenTTLMinutes int
}

// LatencyConfig sets the simulated round-trip pauses, in milliseconds.
type LatencyConfig struct {
	AuthMillis   int
	TicketMillis int
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "ticketapp"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Storage: StorageConfig{
			Path: getEnv("STORAGE_PATH", "data/ticketapp.db"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			TokenSecret:     getEnv("AUTH_TOKEN_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
		},
		Latency: LatencyConfig{
			AuthMillis:   getEnvAsInt("SIM_AUTH_LATENCY_MS", 500),
			TicketMillis: getEnvAsInt("SIM_TICKET_LATENCY_MS", 300),
		},
	}

	return cfg, nil
}

// AuthDelay returns the simulated auth round-trip duration.
func (l LatencyConfig) AuthDelay() time.Duration {
	if l.AuthMillis <= 0 {
		return 0
	}
	return time.Duration(l.AuthMillis) * time.Millisecond
}

// TicketDelay returns the simulated ticket round-trip duration.
func (l LatencyConfig) TicketDelay() time.Duration {
	if l.TicketMillis <= 0 {
		return 0
	}
	return time.Duration(l.TicketMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
