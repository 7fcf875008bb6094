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
)

// InsertBooks bulk-inserts books with explicit IDs inside a single
// transaction. Used by the CSV importer; API-created books get
// generated IDs instead.
func (db *DB) InsertBooks(ctx context.Context, books []models.Book) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("bulk_insert", "books", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO Books (BookID, Title, Author, Price) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, b := range books {
		if _, err = stmt.ExecContext(ctx, b.ID, b.Title, b.Author, b.Price); err != nil {
			return fmt.Errorf("failed to insert book %d: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// InsertCustomers bulk-inserts customers with explicit IDs inside a
// single transaction.
func (db *DB) InsertCustomers(ctx context.Context, customers []models.Customer) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("bulk_insert", "customers", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO Customers (CustomerID, Name, Email) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, c := range customers {
		if _, err = stmt.ExecContext(ctx, c.ID, c.Name, c.Email); err != nil {
			return fmt.Errorf("failed to insert customer %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// InsertSales bulk-inserts sales with explicit IDs inside a single
// transaction. Referential checks are the importer's responsibility.
func (db *DB) InsertSales(ctx context.Context, sales []models.Sale) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("bulk_insert", "sales", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO Sales (SaleID, BookID, CustomerID, Date, Quantity) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, s := range sales {
		if _, err = stmt.ExecContext(ctx, s.ID, s.BookID, s.CustomerID, s.Date, s.Quantity); err != nil {
			return fmt.Errorf("failed to insert sale %d: %w", s.ID, err)
		}
	}

	return tx.Commit()
}
