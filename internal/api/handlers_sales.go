// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// ListSales handles GET /api/v1/sales.
func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	sales, err := h.db.ListSales(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(sales, len(sales))
}

// GetSale handles GET /api/v1/sales/{id}.
func (h *Handler) GetSale(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid sale ID")
		return
	}

	sale, err := h.db.GetSale(r.Context(), id)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	rw.Success(sale)
}

// CreateSale handles POST /api/v1/sales.
// The referenced book and customer must already exist.
func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.SaleRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	sale, err := h.db.CreateSale(r.Context(), &req)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.Created(sale)
}

// UpdateSale handles PUT /api/v1/sales/{id}.
func (h *Handler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid sale ID")
		return
	}

	var req models.SaleRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	sale, err := h.db.UpdateSale(r.Context(), id, &req)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.Success(sale)
}

// DeleteSale handles DELETE /api/v1/sales/{id}.
func (h *Handler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid sale ID")
		return
	}

	if err := h.db.DeleteSale(r.Context(), id); err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.NoContent()
}
