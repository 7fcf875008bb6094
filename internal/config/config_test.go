// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig() failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"empty db path", func(c *Config) { c.Database.Path = "" }, true},
		{"negative threads", func(c *Config) { c.Database.Threads = -1 }, true},
		{"memory db path", func(c *Config) { c.Database.Path = ":memory:" }, false},
		{"default n zero", func(c *Config) { c.API.DefaultRecommendations = 0 }, true},
		{"max below default", func(c *Config) { c.API.MaxRecommendations = 1 }, true},
		{"rate limit reqs zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit disabled skips checks", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"zero rebuild interval", func(c *Config) { c.Recommend.RebuildInterval = 0 }, true},
		{"neighbor count zero", func(c *Config) { c.Recommend.NeighborCount = 0 }, true},
		{"negative threshold", func(c *Config) { c.Import.HighValueThreshold = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"http port", "HTTP_PORT", "server.port"},
		{"duckdb path", "DUCKDB_PATH", "database.path"},
		{"log level", "LOG_LEVEL", "logging.level"},
		{"cors origins", "CORS_ORIGINS", "security.cors_origins"},
		{"rebuild interval", "RECOMMEND_REBUILD_INTERVAL", "recommend.rebuild_interval"},
		{"unknown dropped", "HOME", ""},
		{"unknown prefixed dropped", "INKWELL_SECRET", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, ":memory:")
	}
	want := []string{"http://localhost:3000", "http://example.com"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], origin)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.DefaultRecommendations != 5 {
		t.Errorf("API.DefaultRecommendations = %d, want 5", cfg.API.DefaultRecommendations)
	}
	if cfg.Recommend.RebuildInterval != 15*time.Minute {
		t.Errorf("Recommend.RebuildInterval = %v, want 15m", cfg.Recommend.RebuildInterval)
	}
	if cfg.Recommend.NeighborCount != 5 {
		t.Errorf("Recommend.NeighborCount = %d, want 5", cfg.Recommend.NeighborCount)
	}
}

func TestAddr(t *testing.T) {
	sc := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := sc.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8080")
	}
}
