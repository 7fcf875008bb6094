// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"testing"
)

func TestLoadRecommendationBooks(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	books, err := db.LoadRecommendationBooks(context.Background())
	if err != nil {
		t.Fatalf("LoadRecommendationBooks failed: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(books))
	}
	if books[0].Title != "Alpha" || books[2].Title != "Gamma" {
		t.Errorf("unexpected book order: %q ... %q", books[0].Title, books[2].Title)
	}
}

func TestLoadRecommendationSales(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	sales, err := db.LoadRecommendationSales(context.Background())
	if err != nil {
		t.Fatalf("LoadRecommendationSales failed: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("expected 3 sale records, got %d", len(sales))
	}

	// Ordered by SaleID with customer names joined in.
	first := sales[0]
	if first.SaleID != 1 || first.BookID != 1 || first.CustomerID != 1 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.CustomerName != "Iris Chen" {
		t.Errorf("expected joined customer name, got %q", first.CustomerName)
	}
	if first.Date != "2026-01-10" || first.Quantity != 2 {
		t.Errorf("unexpected first record fields: %+v", first)
	}

	if sales[2].CustomerName != "Noah Park" {
		t.Errorf("expected Noah Park on last record, got %q", sales[2].CustomerName)
	}
}

func TestLoadRecommendationSales_Empty(t *testing.T) {
	db := setupTestDB(t)

	sales, err := db.LoadRecommendationSales(context.Background())
	if err != nil {
		t.Fatalf("LoadRecommendationSales failed: %v", err)
	}
	if len(sales) != 0 {
		t.Errorf("expected no records, got %d", len(sales))
	}
}
