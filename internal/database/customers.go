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

// ListCustomers retrieves all customers ordered by ID.
func (db *DB) ListCustomers(ctx context.Context) (customers []models.Customer, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list", "customers", time.Since(start), err) }()

	query := `SELECT CustomerID, Name, COALESCE(Email, '') FROM Customers ORDER BY CustomerID`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var c models.Customer
		if err = rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// GetCustomer retrieves a customer by ID. Returns ErrCustomerNotFound if no row exists.
func (db *DB) GetCustomer(ctx context.Context, id int64) (customer *models.Customer, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("get", "customers", time.Since(start), err) }()

	query := `SELECT CustomerID, Name, COALESCE(Email, '') FROM Customers WHERE CustomerID = ?`

	stmt, err := db.prepareStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	var c models.Customer
	err = stmt.QueryRowContext(ctx, id).Scan(&c.ID, &c.Name, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}

	return &c, nil
}

// CreateCustomer inserts a new customer and returns it with the assigned ID.
func (db *DB) CreateCustomer(ctx context.Context, req *models.CustomerRequest) (customer *models.Customer, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "customers", time.Since(start), err) }()

	query := `INSERT INTO Customers (CustomerID, Name, Email)
		SELECT COALESCE(MAX(CustomerID), 0) + 1, ?, ? FROM Customers
		RETURNING CustomerID`

	var id int64
	if err = db.conn.QueryRowContext(ctx, query, req.Name, req.Email).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &models.Customer{ID: id, Name: req.Name, Email: req.Email}, nil
}

// UpdateCustomer updates an existing customer. Returns ErrCustomerNotFound if no row exists.
func (db *DB) UpdateCustomer(ctx context.Context, id int64, req *models.CustomerRequest) (customer *models.Customer, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "customers", time.Since(start), err) }()

	query := `UPDATE Customers SET Name = ?, Email = ? WHERE CustomerID = ?`

	res, err := db.conn.ExecContext(ctx, query, req.Name, req.Email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrCustomerNotFound
	}

	return &models.Customer{ID: id, Name: req.Name, Email: req.Email}, nil
}

// DeleteCustomer removes a customer by ID. Returns ErrCustomerNotFound if no row exists.
func (db *DB) DeleteCustomer(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("delete", "customers", time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM Customers WHERE CustomerID = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
