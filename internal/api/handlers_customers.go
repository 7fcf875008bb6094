// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// ListCustomers handles GET /api/v1/customers.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	customers, err := h.db.ListCustomers(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(customers, len(customers))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid customer ID")
		return
	}

	customer, err := h.db.GetCustomer(r.Context(), id)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	rw.Success(customer)
}

// CreateCustomer handles POST /api/v1/customers.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.CustomerRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	customer, err := h.db.CreateCustomer(r.Context(), &req)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	h.engine.Invalidate()
	rw.Created(customer)
}

// UpdateCustomer handles PUT /api/v1/customers/{id}.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid customer ID")
		return
	}

	var req models.CustomerRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	customer, err := h.db.UpdateCustomer(r.Context(), id, &req)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.Success(customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/{id}.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid customer ID")
		return
	}

	if err := h.db.DeleteCustomer(r.Context(), id); err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.NoContent()
}
