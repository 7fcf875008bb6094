// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core tables and indexes if they do not exist.
// All columns are defined in the initial CREATE TABLE statements; there is
// no migration machinery.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS Books (
			BookID BIGINT PRIMARY KEY,
			Title VARCHAR NOT NULL,
			Author VARCHAR NOT NULL,
			Price DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS Customers (
			CustomerID BIGINT PRIMARY KEY,
			Name VARCHAR NOT NULL,
			Email VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS Sales (
			SaleID BIGINT PRIMARY KEY,
			BookID BIGINT NOT NULL,
			CustomerID BIGINT NOT NULL,
			Date VARCHAR NOT NULL,
			Quantity INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_book ON Sales(BookID)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_customer ON Sales(CustomerID)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON Sales(Date)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}
