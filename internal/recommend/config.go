// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package recommend

import "fmt"

// Config holds recommendation engine parameters.
type Config struct {
	// NeighborCount is the number of most similar customers considered by
	// collaborative filtering.
	NeighborCount int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		NeighborCount: 5,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.NeighborCount < 1 {
		return fmt.Errorf("neighbor count must be at least 1, got %d", c.NeighborCount)
	}
	return nil
}
