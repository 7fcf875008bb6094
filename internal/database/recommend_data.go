// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkwell/internal/metrics"
	"github.com/inkwell-labs/inkwell/internal/models"
	"github.com/inkwell-labs/inkwell/internal/recommend"
)

// LoadRecommendationBooks returns the full catalog ordered by ID for
// recommendation dataset builds.
func (db *DB) LoadRecommendationBooks(ctx context.Context) (books []models.Book, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("load", "recommend_books", time.Since(start), err) }()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return db.ListBooks(ctx)
}

// LoadRecommendationSales returns all sales joined with customer names for
// recommendation dataset builds.
func (db *DB) LoadRecommendationSales(ctx context.Context) (sales []recommend.SaleRecord, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("load", "recommend_sales", time.Since(start), err) }()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := `SELECT
			s.SaleID, s.BookID, s.CustomerID, c.Name, s.Date, s.Quantity
		FROM Sales s
		JOIN Customers c ON s.CustomerID = c.CustomerID
		ORDER BY s.SaleID`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for recommendations: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var r recommend.SaleRecord
		if err = rows.Scan(&r.SaleID, &r.BookID, &r.CustomerID, &r.CustomerName, &r.Date, &r.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan sale record: %w", err)
		}
		sales = append(sales, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sale records: %w", err)
	}

	return sales, nil
}

// Compile-time check that DB satisfies the engine's data source.
var _ recommend.DataProvider = (*DB)(nil)
