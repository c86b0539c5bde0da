package providers

import (
	"context"
	"log/slog"

	"github.com/km-arc/go-services/framework/config"
	"github.com/km-arc/go-services/framework/services"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider exposes configuration lookups as services.
//
// Registered services:
//   - "config"      → func(key string, fallback ...string) string
//   - "environment" → func() string  (APP_ENV)
//
//	name, _ := app.Sv("config", "APP_NAME", "unknown")
type ConfigServiceProvider struct {
	services.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(reg *services.Registry) error {
	if _, err := reg.Register("config", func(key string, fallback ...string) string {
		def := ""
		if len(fallback) > 0 {
			def = fallback[0]
		}
		return config.Get(key, def)
	}); err != nil {
		return err
	}

	env := p.Config.App.Env
	_, err := reg.Register("environment", func() string { return env })
	return err
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider registers a "log" service that writes through the
// application logger.
//
// Registered services:
//   - "log" → func(level, msg string, attrs ...any)
type LogServiceProvider struct {
	services.BaseProvider
	Logger *slog.Logger
}

func (p *LogServiceProvider) Register(reg *services.Registry) error {
	logger := p.Logger
	_, err := reg.Register("log", func(level, msg string, attrs ...any) {
		logger.Log(context.Background(), config.ParseLevel(level), msg, attrs...)
	})
	return err
}

// ── VersionServiceProvider ────────────────────────────────────────────────────

// VersionServiceProvider registers "app.version".
type VersionServiceProvider struct {
	services.BaseProvider
	Version string
}

func (p *VersionServiceProvider) Register(reg *services.Registry) error {
	version := p.Version
	_, err := reg.Register("app.version", func() string { return version })
	return err
}
