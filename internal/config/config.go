// Package config loads runtime settings from the environment.
// Endpoint identifiers are constants in package sheets; only ambient
// settings are configurable here.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/ngmaloney/charter-terminal/internal/sheets"
)

// Config holds runtime settings
type Config struct {
	AppEnv        string        // "production" switches the logger to production encoding
	LogFile       string        // log destination; the TUI owns stdout
	HTTPTimeout   time.Duration // per-request timeout, 0 disables it
	SheetsBaseURL string        // export host, overridable for mirrors
}

// Load reads a .env file from the working directory when present, then the
// environment. Missing or malformed values fall back to defaults.
func Load() Config {
	// a missing .env is the normal case
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() Config {
	return Config{
		AppEnv:        envStr("APP_ENV", "development"),
		LogFile:       envStr("LOG_FILE", DefaultLogPath()),
		HTTPTimeout:   envDur("HTTP_TIMEOUT", 30*time.Second),
		SheetsBaseURL: envStr("SHEETS_BASE_URL", sheets.DefaultBaseURL),
	}
}

// DefaultLogPath returns the log file used when LOG_FILE is unset
func DefaultLogPath() string {
	return filepath.Join("data", "charter-terminal.log")
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if v == "0" {
		return 0
	}
	if dur, err := time.ParseDuration(v); err == nil && dur >= 0 {
		return dur
	}
	return d
}
