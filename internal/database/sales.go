// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkwell/internal/metrics"
	"github.com/inkwell-labs/inkwell/internal/models"
)

// saleDetailColumns is the select list shared by ListSales and GetSale.
const saleDetailColumns = `
	s.SaleID, s.BookID, s.CustomerID, s.Date, s.Quantity,
	b.Title, b.Price, c.Name, s.Quantity * b.Price AS TotalAmount`

// ListSales retrieves all sales joined with book and customer details,
// newest first.
func (db *DB) ListSales(ctx context.Context) (sales []models.SaleDetail, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list", "sales", time.Since(start), err) }()

	query := `SELECT` + saleDetailColumns + `
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		JOIN Customers c ON s.CustomerID = c.CustomerID
		ORDER BY s.Date DESC, s.SaleID DESC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var d models.SaleDetail
		if err = scanSaleDetail(rows, &d); err != nil {
			return nil, err
		}
		sales = append(sales, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return sales, nil
}

// GetSale retrieves a sale by ID with book and customer details.
// Returns ErrSaleNotFound if no row exists.
func (db *DB) GetSale(ctx context.Context, id int64) (sale *models.SaleDetail, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("get", "sales", time.Since(start), err) }()

	query := `SELECT` + saleDetailColumns + `
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		JOIN Customers c ON s.CustomerID = c.CustomerID
		WHERE s.SaleID = ?`

	var d models.SaleDetail
	err = db.conn.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.BookID, &d.CustomerID, &d.Date, &d.Quantity,
		&d.BookTitle, &d.BookPrice, &d.CustomerName, &d.TotalAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sale %d: %w", id, err)
	}

	return &d, nil
}

// CreateSale inserts a new sale after verifying the referenced book and
// customer exist, and returns the joined detail row.
func (db *DB) CreateSale(ctx context.Context, req *models.SaleRequest) (sale *models.SaleDetail, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "sales", time.Since(start), err) }()

	if err = db.checkSaleReferences(ctx, req.BookID, req.CustomerID); err != nil {
		return nil, err
	}

	query := `INSERT INTO Sales (SaleID, BookID, CustomerID, Date, Quantity)
		SELECT COALESCE(MAX(SaleID), 0) + 1, ?, ?, ?, ? FROM Sales
		RETURNING SaleID`

	var id int64
	if err = db.conn.QueryRowContext(ctx, query, req.BookID, req.CustomerID, req.Date, req.Quantity).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return db.GetSale(ctx, id)
}

// UpdateSale updates an existing sale. Returns ErrSaleNotFound if no row
// exists, ErrBookNotFound or ErrCustomerNotFound if a reference is dangling.
func (db *DB) UpdateSale(ctx context.Context, id int64, req *models.SaleRequest) (sale *models.SaleDetail, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "sales", time.Since(start), err) }()

	if err = db.checkSaleReferences(ctx, req.BookID, req.CustomerID); err != nil {
		return nil, err
	}

	query := `UPDATE Sales SET BookID = ?, CustomerID = ?, Date = ?, Quantity = ? WHERE SaleID = ?`

	res, err := db.conn.ExecContext(ctx, query, req.BookID, req.CustomerID, req.Date, req.Quantity, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrSaleNotFound
	}

	return db.GetSale(ctx, id)
}

// DeleteSale removes a sale by ID. Returns ErrSaleNotFound if no row exists.
func (db *DB) DeleteSale(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("delete", "sales", time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM Sales WHERE SaleID = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// checkSaleReferences verifies the book and customer referenced by a sale exist.
func (db *DB) checkSaleReferences(ctx context.Context, bookID, customerID int64) error {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM Books WHERE BookID = ?)`, bookID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check book %d: %w", bookID, err)
	}
	if !exists {
		return ErrBookNotFound
	}

	err = db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM Customers WHERE CustomerID = ?)`, customerID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}
	if !exists {
		return ErrCustomerNotFound
	}

	return nil
}

// scanSaleDetail scans a joined sale row from rows.
func scanSaleDetail(rows *sql.Rows, d *models.SaleDetail) error {
	if err := rows.Scan(
		&d.ID, &d.BookID, &d.CustomerID, &d.Date, &d.Quantity,
		&d.BookTitle, &d.BookPrice, &d.CustomerName, &d.TotalAmount,
	); err != nil {
		return fmt.Errorf("failed to scan sale: %w", err)
	}
	return nil
}
