// Package testsupport provides shared helpers for package tests: temp-dir
// configs and template image fixtures.
package testsupport

import (
	"path/filepath"
	"testing"

	"cardpress/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.UploadDir = filepath.Join(base, "uploads")
	cfg.Paths.OutputDir = filepath.Join(base, "cards")
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"
	cfg.Render.FontPath = filepath.Join(base, "assets", "Hopone.ttf")
	cfg.Janitor.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithSMTP points the config at a mail host so MailEnabled is true.
func WithSMTP(host string, port int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.SMTP.Host = host
		cfg.SMTP.Port = port
		cfg.SMTP.From = "cards@example.com"
	}
}
