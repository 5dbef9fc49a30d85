package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the tracker.
type Config struct {
	DatabaseURL     string
	ListenAddr      string
	JWTSecret       string
	TokenTTL        time.Duration
	DefaultPIN      string
	RatePerMinute   float64
	SummaryInterval time.Duration
	TelegramToken   string
	TelegramChatID  int64
}

// Load reads configuration from environment variables with sane defaults.
// JWT_SECRET is only required when serving HTTP; the serve command checks
// it. DEFAULT_PIN is only needed until the first login bootstraps the
// credential.
func Load() Config {
	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ListenAddr:      strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:        parseHours(strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS"))),
		DefaultPIN:      strings.TrimSpace(os.Getenv("DEFAULT_PIN")),
		RatePerMinute:   parseRate(strings.TrimSpace(os.Getenv("RATE_PER_MINUTE"))),
		SummaryInterval: parseHours(strings.TrimSpace(os.Getenv("SUMMARY_INTERVAL_HOURS"))),
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		TelegramChatID:  parseChatID(strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "workhours.db"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.RatePerMinute == 0 {
		cfg.RatePerMinute = 0.50
	}

	return cfg
}

func parseHours(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

func parseRate(raw string) float64 {
	if raw == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}

func parseChatID(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
