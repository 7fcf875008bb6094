// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"testing"
)

func TestSalesByBook(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.SalesByBook(context.Background(), nil)
	if err != nil {
		t.Fatalf("SalesByBook failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	// Best sellers first: Beta sold 3, Alpha 2, Gamma 1.
	want := []struct {
		bookID    int64
		totalSold int64
		revenue   float64
	}{
		{2, 3, 75.00},
		{1, 2, 25.00},
		{3, 1, 45.00},
	}
	for i, w := range want {
		s := summaries[i]
		if s.BookID != w.bookID || s.TotalSold != w.totalSold || s.TotalRevenue != w.revenue {
			t.Errorf("position %d: got book=%d sold=%d revenue=%v, want book=%d sold=%d revenue=%v",
				i, s.BookID, s.TotalSold, s.TotalRevenue, w.bookID, w.totalSold, w.revenue)
		}
	}
}

func TestSalesByBook_Filters(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	ctx := context.Background()

	tests := []struct {
		name        string
		filter      AnalyticsFilter
		wantBookIDs []int64
	}{
		{
			name:        "date range keeps february only",
			filter:      AnalyticsFilter{StartDate: "2026-02-01"},
			wantBookIDs: []int64{2, 3},
		},
		{
			name:        "end date keeps january only",
			filter:      AnalyticsFilter{EndDate: "2026-01-31"},
			wantBookIDs: []int64{1},
		},
		{
			name:        "author filter",
			filter:      AnalyticsFilter{Authors: []string{"Ada Voss"}},
			wantBookIDs: []int64{1, 3},
		},
		{
			name:        "combined filter with no matches",
			filter:      AnalyticsFilter{EndDate: "2026-01-31", Authors: []string{"Ben Holt"}},
			wantBookIDs: nil,
		},
		{
			name:        "customer filter keeps one customer's purchases",
			filter:      AnalyticsFilter{CustomerIDs: []int64{1}},
			wantBookIDs: []int64{1, 3},
		},
		{
			name:        "customer filter with multiple IDs",
			filter:      AnalyticsFilter{CustomerIDs: []int64{1, 2}},
			wantBookIDs: []int64{2, 1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries, err := db.SalesByBook(ctx, &tt.filter)
			if err != nil {
				t.Fatalf("SalesByBook failed: %v", err)
			}
			if len(summaries) != len(tt.wantBookIDs) {
				t.Fatalf("expected %d summaries, got %d", len(tt.wantBookIDs), len(summaries))
			}
			for i, want := range tt.wantBookIDs {
				if summaries[i].BookID != want {
					t.Errorf("position %d: expected book %d, got %d", i, want, summaries[i].BookID)
				}
			}
		})
	}
}

func TestBestsellingAuthors(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.BestsellingAuthors(context.Background(), nil)
	if err != nil {
		t.Fatalf("BestsellingAuthors failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(summaries))
	}

	// Both authors sold 3 units; the tie breaks alphabetically.
	if summaries[0].Author != "Ada Voss" || summaries[0].BooksSold != 3 || summaries[0].TotalRevenue != 70.00 {
		t.Errorf("unexpected first author: %+v", summaries[0])
	}
	if summaries[1].Author != "Ben Holt" || summaries[1].BooksSold != 3 || summaries[1].TotalRevenue != 75.00 {
		t.Errorf("unexpected second author: %+v", summaries[1])
	}
}

func TestTopCustomers(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.TopCustomers(context.Background(), nil)
	if err != nil {
		t.Fatalf("TopCustomers failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(summaries))
	}

	// Noah spent 75.00 in one transaction, Iris 70.00 across two.
	first := summaries[0]
	if first.Name != "Noah Park" || first.TotalTransactions != 1 || first.TotalBooksBought != 3 || first.TotalSpent != 75.00 {
		t.Errorf("unexpected top customer: %+v", first)
	}
	second := summaries[1]
	if second.Name != "Iris Chen" || second.TotalTransactions != 2 || second.TotalBooksBought != 3 || second.TotalSpent != 70.00 {
		t.Errorf("unexpected second customer: %+v", second)
	}
}

func TestTopCustomers_CustomerFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.TopCustomers(context.Background(), &AnalyticsFilter{CustomerIDs: []int64{2}})
	if err != nil {
		t.Fatalf("TopCustomers failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(summaries))
	}
	if summaries[0].CustomerID != 2 || summaries[0].TotalSpent != 75.00 {
		t.Errorf("unexpected filtered summary: %+v", summaries[0])
	}
}

func TestMonthlySales(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.MonthlySales(context.Background(), nil)
	if err != nil {
		t.Fatalf("MonthlySales failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 months, got %d", len(summaries))
	}

	jan := summaries[0]
	if jan.Month != "2026-01" || jan.Transactions != 1 || jan.BooksSold != 2 || jan.TotalRevenue != 25.00 {
		t.Errorf("unexpected january summary: %+v", jan)
	}
	feb := summaries[1]
	if feb.Month != "2026-02" || feb.Transactions != 2 || feb.BooksSold != 4 || feb.TotalRevenue != 120.00 {
		t.Errorf("unexpected february summary: %+v", feb)
	}
}

func TestPriceRangeAnalysis(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	summaries, err := db.PriceRangeAnalysis(context.Background(), nil)
	if err != nil {
		t.Fatalf("PriceRangeAnalysis failed: %v", err)
	}

	want := map[string]struct {
		bookCount int64
		unitsSold int64
	}{
		"10-20": {1, 2}, // Alpha at 12.50
		"20-30": {1, 3}, // Beta at 25.00
		"40+":   {1, 1}, // Gamma at 45.00
	}
	if len(summaries) != len(want) {
		t.Fatalf("expected %d bands, got %d", len(want), len(summaries))
	}
	for _, s := range summaries {
		w, ok := want[s.Range]
		if !ok {
			t.Errorf("unexpected band %q", s.Range)
			continue
		}
		if s.BookCount != w.bookCount || s.UnitsSold != w.unitsSold {
			t.Errorf("band %q: got books=%d units=%d, want books=%d units=%d",
				s.Range, s.BookCount, s.UnitsSold, w.bookCount, w.unitsSold)
		}
	}
}
