// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/database"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestReadCSV_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "books.csv", "BookID,Title\n1,Alpha\n")

	table, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}

	if err := table.requireColumns("bookid", "title", "author", "price"); err == nil {
		t.Error("expected error for missing author and price columns")
	}
}

func TestCleanBooks(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "books.csv",
		"BookID,Title,Author,Price\n"+
			"1,Alpha,Ada Voss,10\n"+
			"2,Beta,Ben Holt,\n"+ // missing price -> mean
			"1,Alpha Again,Ada Voss,12\n"+ // duplicate ID
			"3,Gamma,Ada Voss,30\n"+
			",No ID,Nobody,5\n") // missing ID -> skipped

	table, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}

	books, report := cleanBooks(table)

	if report.RowsRead != 5 {
		t.Errorf("RowsRead = %d, want 5", report.RowsRead)
	}
	if report.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", report.Duplicates)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if report.Filled != 1 {
		t.Errorf("Filled = %d, want 1", report.Filled)
	}
	if len(books) != 3 {
		t.Fatalf("len(books) = %d, want 3", len(books))
	}

	// Mean of 10 and 30 fills Beta's missing price.
	if books[1].ID != 2 || books[1].Price != 20 {
		t.Errorf("filled book = %+v, want ID 2 with price 20", books[1])
	}
}

func TestCleanCustomers(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "customers.csv",
		"CustomerID,Name,Email\n"+
			"1,Iris Chen,iris@example.com\n"+
			"2,Noah Park,\n"+
			"2,Noah Dupe,noah@example.com\n"+
			"3,,missing@name.example\n")

	table, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}

	customers, report := cleanCustomers(table)

	if len(customers) != 2 {
		t.Fatalf("len(customers) = %d, want 2", len(customers))
	}
	if report.Duplicates != 1 || report.Skipped != 1 {
		t.Errorf("report = %+v, want 1 duplicate and 1 skipped", report)
	}
	if customers[0].Email != "iris@example.com" {
		t.Errorf("customers[0].Email = %q", customers[0].Email)
	}
}

func TestCleanSales(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "sales.csv",
		"SaleID,BookID,CustomerID,Date,Quantity\n"+
			"1,1,1,2026-01-01,2\n"+
			"2,1,1,2026-01-01,2\n"+ // duplicate tuple
			"3,2,1,2026-01-02,\n"+ // missing quantity -> 1
			"4,1,2,not-a-date,1\n"+ // bad date -> skipped
			"5,3,2,2026-01-03,1\n")

	table, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}

	prices := map[int64]float64{1: 50, 2: 12, 3: 30}
	sales, report, highValue := cleanSales(table, prices, 40)

	if len(sales) != 3 {
		t.Fatalf("len(sales) = %d, want 3", len(sales))
	}
	if report.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", report.Duplicates)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if report.Filled != 1 {
		t.Errorf("Filled = %d, want 1", report.Filled)
	}
	if sales[1].Quantity != 1 {
		t.Errorf("defaulted quantity = %d, want 1", sales[1].Quantity)
	}

	// Only sale 1 references a book above the threshold.
	if highValue != 1 {
		t.Errorf("highValue = %d, want 1", highValue)
	}
}

func TestImporterRun(t *testing.T) {
	dir := t.TempDir()
	booksCSV := writeCSV(t, dir, "books.csv",
		"BookID,Title,Author,Price\n"+
			"1,Alpha,Ada Voss,45\n"+
			"2,Beta,Ben Holt,12\n")
	customersCSV := writeCSV(t, dir, "customers.csv",
		"CustomerID,Name,Email\n"+
			"1,Iris Chen,iris@example.com\n")
	salesCSV := writeCSV(t, dir, "sales.csv",
		"SaleID,BookID,CustomerID,Date,Quantity\n"+
			"1,1,1,2026-01-01,1\n"+
			"2,2,1,2026-01-02,3\n")

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	defer db.Close()

	imp := New(&config.ImportConfig{
		BooksCSV:           booksCSV,
		CustomersCSV:       customersCSV,
		SalesCSV:           salesCSV,
		HighValueThreshold: 40,
		InsertRate:         1000,
	}, db)

	ctx := context.Background()
	report, err := imp.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Books.Inserted != 2 || report.Customers.Inserted != 1 || report.Sales.Inserted != 2 {
		t.Errorf("inserted counts = %d/%d/%d, want 2/1/2",
			report.Books.Inserted, report.Customers.Inserted, report.Sales.Inserted)
	}
	if report.HighValueSales != 1 {
		t.Errorf("HighValueSales = %d, want 1", report.HighValueSales)
	}
	if report.Duration() < 0 {
		t.Error("negative duration")
	}

	books, err := db.ListBooks(ctx)
	if err != nil {
		t.Fatalf("ListBooks() error = %v", err)
	}
	if len(books) != 2 {
		t.Errorf("len(books) = %d, want 2", len(books))
	}

	sales, err := db.ListSales(ctx)
	if err != nil {
		t.Fatalf("ListSales() error = %v", err)
	}
	if len(sales) != 2 {
		t.Errorf("len(sales) = %d, want 2", len(sales))
	}
}

func TestImporterRun_NoFilesConfigured(t *testing.T) {
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	defer db.Close()

	imp := New(&config.ImportConfig{}, db)

	report, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.TotalInserted() != 0 {
		t.Errorf("TotalInserted() = %d, want 0", report.TotalInserted())
	}
}
