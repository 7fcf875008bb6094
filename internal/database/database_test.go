// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"testing"

	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/models"
)

// testDBSemaphore serializes test database lifecycles. Concurrent DuckDB
// CGO calls from parallel tests can hang under CI resource pressure, so
// only one test holds an open connection at a time.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates an in-memory test database. The semaphore is held
// for the entire test lifecycle and released via t.Cleanup.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "512MB",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// seedCatalog inserts a small catalog with purchase history:
//
//	Books:     1 Alpha/Ada Voss/12.50, 2 Beta/Ben Holt/25.00, 3 Gamma/Ada Voss/45.00
//	Customers: 1 Iris Chen, 2 Noah Park
//	Sales:     1: c1 buys b1 x2 on 2026-01-10
//	           2: c1 buys b3 x1 on 2026-02-05
//	           3: c2 buys b2 x3 on 2026-02-20
func seedCatalog(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	if err := db.InsertBooks(ctx, []models.Book{
		{ID: 1, Title: "Alpha", Author: "Ada Voss", Price: 12.50},
		{ID: 2, Title: "Beta", Author: "Ben Holt", Price: 25.00},
		{ID: 3, Title: "Gamma", Author: "Ada Voss", Price: 45.00},
	}); err != nil {
		t.Fatalf("Failed to seed books: %v", err)
	}

	if err := db.InsertCustomers(ctx, []models.Customer{
		{ID: 1, Name: "Iris Chen", Email: "iris@example.com"},
		{ID: 2, Name: "Noah Park", Email: "noah@example.com"},
	}); err != nil {
		t.Fatalf("Failed to seed customers: %v", err)
	}

	if err := db.InsertSales(ctx, []models.Sale{
		{ID: 1, BookID: 1, CustomerID: 1, Date: "2026-01-10", Quantity: 2},
		{ID: 2, BookID: 3, CustomerID: 1, Date: "2026-02-05", Quantity: 1},
		{ID: 3, BookID: 2, CustomerID: 2, Date: "2026-02-20", Quantity: 3},
	}); err != nil {
		t.Fatalf("Failed to seed sales: %v", err)
	}
}

func TestNewAndPing(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestSchemaCreatedOnStartup(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// All three tables exist and are empty.
	books, err := db.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty Books table, got %d rows", len(books))
	}

	customers, err := db.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("expected empty Customers table, got %d rows", len(customers))
	}

	sales, err := db.ListSales(ctx)
	if err != nil {
		t.Fatalf("ListSales failed: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected empty Sales table, got %d rows", len(sales))
	}
}
