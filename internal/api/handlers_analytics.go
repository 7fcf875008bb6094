// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inkwell-labs/inkwell/internal/database"
)

// analyticsFilter builds an AnalyticsFilter from query parameters.
// Supported: start_date, end_date (YYYY-MM-DD), authors and customer_ids
// (both comma-separated). Returns false after writing an error response
// when a date or customer ID is malformed.
func analyticsFilter(rw *ResponseWriter, r *http.Request) (*database.AnalyticsFilter, bool) {
	q := r.URL.Query()
	filter := &database.AnalyticsFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	for _, raw := range []string{filter.StartDate, filter.EndDate} {
		if raw == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			rw.InvalidRequest("Invalid date: expected YYYY-MM-DD")
			return nil, false
		}
	}

	if raw := q.Get("authors"); raw != "" {
		for _, author := range strings.Split(raw, ",") {
			if author = strings.TrimSpace(author); author != "" {
				filter.Authors = append(filter.Authors, author)
			}
		}
	}

	if raw := q.Get("customer_ids"); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			id, err := strconv.ParseInt(field, 10, 64)
			if err != nil || id <= 0 {
				rw.InvalidRequest("Invalid customer_ids: expected positive integers")
				return nil, false
			}
			filter.CustomerIDs = append(filter.CustomerIDs, id)
		}
	}

	return filter, true
}

// AnalyticsSalesByBook handles GET /api/v1/analytics/sales-by-book.
func (h *Handler) AnalyticsSalesByBook(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, ok := analyticsFilter(rw, r)
	if !ok {
		return
	}

	summaries, err := h.db.SalesByBook(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(summaries, len(summaries))
}

// AnalyticsAuthors handles GET /api/v1/analytics/authors.
func (h *Handler) AnalyticsAuthors(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, ok := analyticsFilter(rw, r)
	if !ok {
		return
	}

	summaries, err := h.db.BestsellingAuthors(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(summaries, len(summaries))
}

// AnalyticsCustomers handles GET /api/v1/analytics/customers.
func (h *Handler) AnalyticsCustomers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, ok := analyticsFilter(rw, r)
	if !ok {
		return
	}

	summaries, err := h.db.TopCustomers(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(summaries, len(summaries))
}

// AnalyticsMonthly handles GET /api/v1/analytics/monthly.
func (h *Handler) AnalyticsMonthly(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, ok := analyticsFilter(rw, r)
	if !ok {
		return
	}

	summaries, err := h.db.MonthlySales(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(summaries, len(summaries))
}

// AnalyticsPriceRanges handles GET /api/v1/analytics/price-ranges.
func (h *Handler) AnalyticsPriceRanges(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, ok := analyticsFilter(rw, r)
	if !ok {
		return
	}

	summaries, err := h.db.PriceRangeAnalysis(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	rw.SuccessWithCount(summaries, len(summaries))
}
