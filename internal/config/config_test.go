package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "s3l8xumo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Store.Dataset != "production" {
		t.Errorf("expected dataset 'production', got '%s'", cfg.Store.Dataset)
	}
	if cfg.Store.FetchTimeout != 5*time.Second {
		t.Errorf("expected fetch timeout 5s, got %s", cfg.Store.FetchTimeout)
	}
	if cfg.Routing.DefaultLocale != "de" || len(cfg.Routing.Locales) != 1 {
		t.Errorf("expected single routed locale 'de', got %v / %s", cfg.Routing.Locales, cfg.Routing.DefaultLocale)
	}
	if len(cfg.Revalidate.DefaultTags) != 3 || cfg.Revalidate.DefaultTags[0] != "home" {
		t.Errorf("unexpected default tags: %v", cfg.Revalidate.DefaultTags)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("ROUTING_LOCALES", "de, en")
	t.Setenv("ROUTING_DEFAULT_LOCALE", "en")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("expected port 8081, got %d", cfg.Server.Port)
	}
	if len(cfg.Routing.Locales) != 2 || cfg.Routing.Locales[1] != "en" {
		t.Errorf("unexpected routed locales: %v", cfg.Routing.Locales)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("expected cache ttl 10m, got %s", cfg.Cache.TTL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 3000},
			Store:   StoreConfig{ProjectID: "p", Dataset: "production", APIVersion: "2026-02-11"},
			Routing: RoutingConfig{Locales: []string{"de"}, DefaultLocale: "de"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing project", func(c *Config) { c.Store.ProjectID = "" }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
		{"unsupported locale", func(c *Config) { c.Routing.Locales = []string{"fr"} }},
		{"default not routed", func(c *Config) { c.Routing.DefaultLocale = "en" }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
