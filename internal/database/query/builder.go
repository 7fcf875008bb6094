// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

// Package query provides SQL query building utilities for the database package.
// It reduces code duplication and provides type-safe query construction.
package query

import (
	"fmt"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddDateRange(startDate, endDate)
//	wb.AddAuthors([]string{"Jane Austen"})
//	whereClause, args := wb.Build()
//	// s.Date >= ? AND s.Date <= ? AND b.Author IN (?)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddDateRange adds start and/or end date filters on the sale date.
// Dates are YYYY-MM-DD strings; that format compares correctly as text.
// Empty strings are skipped, allowing open-ended ranges.
func (wb *WhereBuilder) AddDateRange(startDate, endDate string) *WhereBuilder {
	if startDate != "" {
		wb.clauses = append(wb.clauses, "s.Date >= ?")
		wb.args = append(wb.args, startDate)
	}
	if endDate != "" {
		wb.clauses = append(wb.clauses, "s.Date <= ?")
		wb.args = append(wb.args, endDate)
	}
	return wb
}

// AddAuthors adds an author filter using an IN clause.
// Empty slices are skipped.
func (wb *WhereBuilder) AddAuthors(authors []string) *WhereBuilder {
	if len(authors) > 0 {
		placeholders := make([]string, len(authors))
		for i, author := range authors {
			placeholders[i] = "?"
			wb.args = append(wb.args, author)
		}
		wb.clauses = append(wb.clauses, fmt.Sprintf("b.Author IN (%s)", strings.Join(placeholders, ", ")))
	}
	return wb
}

// AddCustomers adds a customer ID filter using an IN clause.
// Empty slices are skipped.
func (wb *WhereBuilder) AddCustomers(customerIDs []int64) *WhereBuilder {
	if len(customerIDs) > 0 {
		placeholders := make([]string, len(customerIDs))
		for i, id := range customerIDs {
			placeholders[i] = "?"
			wb.args = append(wb.args, id)
		}
		wb.clauses = append(wb.clauses, fmt.Sprintf("s.CustomerID IN (%s)", strings.Join(placeholders, ", ")))
	}
	return wb
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}
