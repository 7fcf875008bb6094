// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

// Package config provides centralized configuration for Inkwell.
//
// Configuration is loaded in three layers with later layers overriding
// earlier ones:
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Import    ImportConfig    `koanf:"import"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host      string        `koanf:"host"`
	Port      int           `koanf:"port"`
	Timeout   time.Duration `koanf:"timeout"`    // Read/write timeout for the HTTP server
	StaticDir string        `koanf:"static_dir"` // Directory served at /; empty disables the frontend
}

// DatabaseConfig holds DuckDB configuration.
type DatabaseConfig struct {
	Path      string `koanf:"path"`       // Database file path; ":memory:" for in-memory
	MaxMemory string `koanf:"max_memory"` // DuckDB memory limit, e.g. "1GB"
	Threads   int    `koanf:"threads"`    // 0 = use runtime.NumCPU()
}

// APIConfig holds API behavior configuration.
type APIConfig struct {
	DefaultRecommendations int `koanf:"default_recommendations"` // Default n when the query param is absent
	MaxRecommendations     int `koanf:"max_recommendations"`     // Upper bound on requested n
}

// SecurityConfig holds CORS and rate limiting configuration.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds recommendation engine configuration.
type RecommendConfig struct {
	RebuildInterval  time.Duration `koanf:"rebuild_interval"`   // How often the scheduled service rebuilds the dataset
	RebuildOnStartup bool          `koanf:"rebuild_on_startup"` // Build the dataset before serving the first request
	NeighborCount    int           `koanf:"neighbor_count"`     // Similar users considered by collaborative filtering
}

// ImportConfig holds CSV importer configuration.
type ImportConfig struct {
	BooksCSV           string  `koanf:"books_csv"`
	CustomersCSV       string  `koanf:"customers_csv"`
	SalesCSV           string  `koanf:"sales_csv"`
	HighValueThreshold float64 `koanf:"high_value_threshold"` // Book price above which a sale is reported as high-value
	InsertRate         int     `koanf:"insert_rate"`          // Max rows inserted per second during bulk import; 0 = unpaced
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}
	if c.API.DefaultRecommendations < 1 {
		return fmt.Errorf("api.default_recommendations must be at least 1, got %d", c.API.DefaultRecommendations)
	}
	if c.API.MaxRecommendations < c.API.DefaultRecommendations {
		return fmt.Errorf("api.max_recommendations (%d) must not be below api.default_recommendations (%d)",
			c.API.MaxRecommendations, c.API.DefaultRecommendations)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.Recommend.RebuildInterval <= 0 {
		return fmt.Errorf("recommend.rebuild_interval must be positive, got %v", c.Recommend.RebuildInterval)
	}
	if c.Recommend.NeighborCount < 1 {
		return fmt.Errorf("recommend.neighbor_count must be at least 1, got %d", c.Recommend.NeighborCount)
	}
	if c.Import.HighValueThreshold < 0 {
		return fmt.Errorf("import.high_value_threshold must not be negative, got %v", c.Import.HighValueThreshold)
	}
	return nil
}

// Addr returns the host:port address the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
