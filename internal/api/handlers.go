// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/database"
	"github.com/inkwell-labs/inkwell/internal/recommend"
	"github.com/inkwell-labs/inkwell/internal/validation"
)

// Handler holds dependencies for all API handlers.
type Handler struct {
	db        *database.DB
	engine    *recommend.Engine
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(db *database.DB, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}

// idParam parses the named Chi URL parameter as a positive int64.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// decodeRequest decodes a JSON request body into dst and validates it.
// On failure it writes the error response and returns false.
func (h *Handler) decodeRequest(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.InvalidRequest("Invalid JSON request body")
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}

	return true
}

// respondDBError maps database errors to API responses. Sentinel
// not-found errors become 404, everything else a generic 500.
func respondDBError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrBookNotFound):
		rw.NotFound("Book not found")
	case errors.Is(err, database.ErrCustomerNotFound):
		rw.NotFound("Customer not found")
	case errors.Is(err, database.ErrSaleNotFound):
		rw.NotFound("Sale not found")
	default:
		rw.DatabaseError(err)
	}
}

// recommendationCount parses the n query parameter, applying the
// configured default and upper bound. Returns false after writing an
// error response when the parameter is malformed.
func (h *Handler) recommendationCount(rw *ResponseWriter, r *http.Request) (int, bool) {
	n := h.config.API.DefaultRecommendations

	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rw.InvalidRequest("Invalid n parameter: must be an integer")
			return 0, false
		}
		n = parsed
	}

	if n > h.config.API.MaxRecommendations {
		n = h.config.API.MaxRecommendations
	}

	return n, true
}
