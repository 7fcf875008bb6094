// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/inkwell-labs/inkwell/internal/models"
)

func TestCustomerCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created, err := db.CreateCustomer(ctx, &models.CustomerRequest{Name: "Iris Chen", Email: "iris@example.com"})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}

	got, err := db.GetCustomer(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCustomer failed: %v", err)
	}
	if got.Name != "Iris Chen" || got.Email != "iris@example.com" {
		t.Errorf("unexpected customer: %+v", got)
	}

	updated, err := db.UpdateCustomer(ctx, created.ID, &models.CustomerRequest{Name: "Iris Chen", Email: "ichen@example.com"})
	if err != nil {
		t.Fatalf("UpdateCustomer failed: %v", err)
	}
	if updated.Email != "ichen@example.com" {
		t.Errorf("expected updated email, got %q", updated.Email)
	}

	if err := db.DeleteCustomer(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCustomer failed: %v", err)
	}
	if _, err := db.GetCustomer(ctx, created.ID); !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound after delete, got %v", err)
	}
}

func TestCustomerNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		op   func() error
	}{
		{"get", func() error { _, err := db.GetCustomer(ctx, 42); return err }},
		{"update", func() error {
			_, err := db.UpdateCustomer(ctx, 42, &models.CustomerRequest{Name: "X"})
			return err
		}},
		{"delete", func() error { return db.DeleteCustomer(ctx, 42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, ErrCustomerNotFound) {
				t.Errorf("expected ErrCustomerNotFound, got %v", err)
			}
		})
	}
}

func TestListCustomers_OrderedByID(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	customers, err := db.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("ListCustomers failed: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
	if customers[0].Name != "Iris Chen" || customers[1].Name != "Noah Park" {
		t.Errorf("unexpected order: %q, %q", customers[0].Name, customers[1].Name)
	}
}
