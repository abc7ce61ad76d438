package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabasePath  = "data/lunches.db"
	defaultPort          = "8080"
	defaultTokenTTL      = 24 * time.Hour
	defaultPlanningWeeks = 2
)

// Config holds the configuration for the application.
type Config struct {
	// API server
	DatabasePath       string
	Port               string
	JWTSecret          string
	TokenTTL           time.Duration
	CORSAllowedOrigins []string

	// API client (planner CLI and bot)
	APIBaseURL    string
	APIToken      string
	PlanningWeeks int

	// Telegram Config
	TelegramBotToken   string
	TelegramWebhookURL string
	// TelegramUsers maps a Telegram user id to an application user id.
	TelegramUsers   map[int64]string
	AdminTelegramID int64
}

// NewFromEnv creates a new Config object from environment variables.
// Only malformed values fail here; each binary checks what it needs with
// the Require* methods.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		DatabasePath:       getEnv("DATABASE_PATH", defaultDatabasePath),
		Port:               getEnv("PORT", defaultPort),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           defaultTokenTTL,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		APIBaseURL:         strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APIToken:           os.Getenv("API_TOKEN"),
		PlanningWeeks:      defaultPlanningWeeks,
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL: os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramUsers:      map[int64]string{},
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", v)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("PLANNING_WEEKS"); v != "" {
		weeks, err := strconv.Atoi(v)
		if err != nil || weeks < 1 {
			return nil, fmt.Errorf("PLANNING_WEEKS must be a positive integer, got %q", v)
		}
		cfg.PlanningWeeks = weeks
	}

	if v := os.Getenv("ADMIN_TELEGRAM_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_ID must be numeric, got %q", v)
		}
		cfg.AdminTelegramID = id
	}

	// TELEGRAM_USERS=12345=user-uuid,67890=other-uuid
	for _, pair := range splitList(os.Getenv("TELEGRAM_USERS")) {
		tgID, userID, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(userID) == "" {
			return nil, fmt.Errorf("TELEGRAM_USERS entry %q must look like telegramID=userID", pair)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(tgID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_USERS entry %q has a non-numeric telegram id", pair)
		}
		cfg.TelegramUsers[id] = strings.TrimSpace(userID)
	}

	return cfg, nil
}

// RequireServer checks the settings the API server cannot start without.
func (c *Config) RequireServer() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable not set")
	}
	return nil
}

// RequireClient checks the settings needed to talk to the API.
func (c *Config) RequireClient() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL environment variable not set")
	}
	if c.APIToken == "" {
		return fmt.Errorf("API_TOKEN environment variable not set")
	}
	return nil
}

// RequireBot checks the client settings plus the Telegram ones.
func (c *Config) RequireBot() error {
	if err := c.RequireClient(); err != nil {
		return err
	}
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
