// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"
	"time"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Health handles GET /health.
// The service is healthy when the database responds to a ping. The
// recommendation engine builds its dataset lazily, so engine_ready is
// informational and does not degrade health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	rw.Success(models.HealthStatus{
		Status:        status,
		Database:      dbConnected,
		EngineReady:   h.engine != nil && h.engine.Ready(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Version:       Version,
	})
}
