// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"
)

// RecommendPopular handles GET /api/v1/recommendations/popular.
func (h *Handler) RecommendPopular(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	n, ok := h.recommendationCount(rw, r)
	if !ok {
		return
	}

	recs, err := h.engine.PopularBooks(r.Context(), n)
	if err != nil {
		rw.InternalError("Failed to generate recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// RecommendForCustomer handles GET /api/v1/recommendations/customers/{id}.
// Collaborative filtering, falling back to popularity for unknown customers.
func (h *Handler) RecommendForCustomer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid customer ID")
		return
	}

	n, ok := h.recommendationCount(rw, r)
	if !ok {
		return
	}

	recs, err := h.engine.CollaborativeForCustomer(r.Context(), id, n)
	if err != nil {
		rw.InternalError("Failed to generate recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// RecommendForBook handles GET /api/v1/recommendations/books/{id}.
// Content-based similarity over price and author features.
func (h *Handler) RecommendForBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid book ID")
		return
	}

	n, ok := h.recommendationCount(rw, r)
	if !ok {
		return
	}

	recs, err := h.engine.ContentBasedForBook(r.Context(), id, n)
	if err != nil {
		rw.InternalError("Failed to generate recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}

// RecommendPersonalized handles GET /api/v1/recommendations/customers/{id}/personalized.
// Hybrid of collaborative and content-based strategies.
func (h *Handler) RecommendPersonalized(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid customer ID")
		return
	}

	n, ok := h.recommendationCount(rw, r)
	if !ok {
		return
	}

	recs, err := h.engine.PersonalizedForCustomer(r.Context(), id, n)
	if err != nil {
		rw.InternalError("Failed to generate recommendations")
		return
	}

	rw.SuccessWithCount(recs, len(recs))
}
