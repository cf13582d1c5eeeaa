package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

// Config keeps runtime settings for the todo server.
type Config struct {
	Addr           string
	DatabaseURL    string
	StaticDir      string
	TelegramToken  string
	TelegramChatID int64
	DigestAt       string
	ReportInterval time.Duration
}

// NotificationsEnabled reports whether a Telegram chat is configured.
func (c Config) NotificationsEnabled() bool {
	return c.TelegramToken != ""
}

// Load reads configuration from .env, environment variables and command-line
// flags, in increasing order of precedence.
func Load(args []string) (Config, error) {
	if os.Getenv("GODOTENV_DISABLE") == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("[warn] load .env: %v", err)
		}
	}

	cfg := Config{
		Addr:           getEnv("TODO_ADDR", ":3000"),
		DatabaseURL:    getEnv("DATABASE_URL", "todos.db"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
		TelegramToken:  getEnv("TELEGRAM_TOKEN", ""),
		DigestAt:       getEnv("DIGEST_AT", ""),
		ReportInterval: parseInterval(getEnv("REPORT_INTERVAL_HOURS", "")),
	}

	if raw := getEnv("TELEGRAM_CHAT_ID", ""); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = id
	}

	fs := flag.NewFlagSet("todoserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "SQLite database path or DSN")
	fs.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "directory with the front-end files")
	fs.StringVar(&cfg.DigestAt, "digest-at", cfg.DigestAt, "send the daily digest at HH:MM")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
