// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package models

// HealthStatus reports service health for monitoring.
type HealthStatus struct {
	Status        string  `json:"status"`
	Database      bool    `json:"database"`
	EngineReady   bool    `json:"engine_ready"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
}
