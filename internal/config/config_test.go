package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ngmaloney/charter-terminal/internal/sheets"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("SHEETS_BASE_URL", "")

	cfg := FromEnv()

	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %s, want development", cfg.AppEnv)
	}
	if cfg.LogFile != filepath.Join("data", "charter-terminal.log") {
		t.Errorf("LogFile = %s, want data/charter-terminal.log", cfg.LogFile)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
	if cfg.SheetsBaseURL != sheets.DefaultBaseURL {
		t.Errorf("SheetsBaseURL = %s, want %s", cfg.SheetsBaseURL, sheets.DefaultBaseURL)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FILE", "/tmp/charter.log")
	t.Setenv("SHEETS_BASE_URL", "http://localhost:9999")

	tests := []struct {
		name    string
		timeout string
		want    time.Duration
	}{
		{"duration", "5s", 5 * time.Second},
		{"zero disables", "0", 0},
		{"malformed falls back", "soon", 30 * time.Second},
		{"negative falls back", "-1s", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HTTP_TIMEOUT", tt.timeout)
			cfg := FromEnv()

			if cfg.HTTPTimeout != tt.want {
				t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, tt.want)
			}
			if cfg.AppEnv != "production" || cfg.LogFile != "/tmp/charter.log" || cfg.SheetsBaseURL != "http://localhost:9999" {
				t.Errorf("FromEnv() = %+v, overrides not applied", cfg)
			}
		})
	}
}
