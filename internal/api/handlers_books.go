// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// ListBooks handles GET /api/v1/books.
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	books, err := h.db.ListBooks(r.Context())
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(books, len(books))
}

// GetBook handles GET /api/v1/books/{id}.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid book ID")
		return
	}

	book, err := h.db.GetBook(r.Context(), id)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	rw.Success(book)
}

// CreateBook handles POST /api/v1/books.
func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.BookRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	book, err := h.db.CreateBook(r.Context(), &req)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	h.engine.Invalidate()
	rw.Created(book)
}

// UpdateBook handles PUT /api/v1/books/{id}.
func (h *Handler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid book ID")
		return
	}

	var req models.BookRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	book, err := h.db.UpdateBook(r.Context(), id, &req)
	if err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.Success(book)
}

// DeleteBook handles DELETE /api/v1/books/{id}.
func (h *Handler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := idParam(r, "id")
	if err != nil {
		rw.InvalidRequest("Invalid book ID")
		return
	}

	if err := h.db.DeleteBook(r.Context(), id); err != nil {
		respondDBError(rw, err)
		return
	}

	h.engine.Invalidate()
	rw.NoContent()
}
