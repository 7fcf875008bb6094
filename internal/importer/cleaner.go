// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package importer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// cleanBooks parses and cleans book rows. Duplicate IDs keep the first
// occurrence. A missing or unparseable price becomes the mean of the
// valid prices in the file.
func cleanBooks(table *csvTable) ([]models.Book, EntityReport) {
	report := EntityReport{RowsRead: len(table.rows)}

	type parsedBook struct {
		book       models.Book
		priceValid bool
	}

	var parsed []parsedBook
	var priceSum float64
	var priceCount int
	seen := make(map[int64]bool)

	for _, row := range table.rows {
		id, err := strconv.ParseInt(table.field(row, "bookid"), 10, 64)
		if err != nil || id <= 0 {
			report.Skipped++
			continue
		}
		if seen[id] {
			report.Duplicates++
			continue
		}

		title := table.field(row, "title")
		author := table.field(row, "author")
		if title == "" || author == "" {
			report.Skipped++
			continue
		}

		price, err := strconv.ParseFloat(table.field(row, "price"), 64)
		valid := err == nil && price >= 0
		if valid {
			priceSum += price
			priceCount++
		}

		seen[id] = true
		parsed = append(parsed, parsedBook{
			book:       models.Book{ID: id, Title: title, Author: author, Price: price},
			priceValid: valid,
		})
	}

	var mean float64
	if priceCount > 0 {
		mean = priceSum / float64(priceCount)
	}

	books := make([]models.Book, 0, len(parsed))
	for _, p := range parsed {
		if !p.priceValid {
			p.book.Price = mean
			report.Filled++
		}
		books = append(books, p.book)
	}

	return books, report
}

// cleanCustomers parses and cleans customer rows. Duplicate IDs keep
// the first occurrence.
func cleanCustomers(table *csvTable) ([]models.Customer, EntityReport) {
	report := EntityReport{RowsRead: len(table.rows)}

	var customers []models.Customer
	seen := make(map[int64]bool)

	for _, row := range table.rows {
		id, err := strconv.ParseInt(table.field(row, "customerid"), 10, 64)
		if err != nil || id <= 0 {
			report.Skipped++
			continue
		}
		if seen[id] {
			report.Duplicates++
			continue
		}

		name := table.field(row, "name")
		if name == "" {
			report.Skipped++
			continue
		}

		seen[id] = true
		customers = append(customers, models.Customer{
			ID:    id,
			Name:  name,
			Email: table.field(row, "email"),
		})
	}

	return customers, report
}

// cleanSales parses and cleans sale rows. Duplicates dedupe on the
// (BookID, CustomerID, Quantity, Date) tuple after quantity defaulting,
// keeping the first occurrence. highValue counts sales whose book price
// exceeds the threshold.
func cleanSales(table *csvTable, prices map[int64]float64, threshold float64) ([]models.Sale, EntityReport, int) {
	report := EntityReport{RowsRead: len(table.rows)}

	var sales []models.Sale
	var highValue int
	seenID := make(map[int64]bool)
	seenKey := make(map[string]bool)

	for _, row := range table.rows {
		id, err := strconv.ParseInt(table.field(row, "saleid"), 10, 64)
		if err != nil || id <= 0 {
			report.Skipped++
			continue
		}
		bookID, err := strconv.ParseInt(table.field(row, "bookid"), 10, 64)
		if err != nil || bookID <= 0 {
			report.Skipped++
			continue
		}
		customerID, err := strconv.ParseInt(table.field(row, "customerid"), 10, 64)
		if err != nil || customerID <= 0 {
			report.Skipped++
			continue
		}

		date := table.field(row, "date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			report.Skipped++
			continue
		}

		quantity, err := strconv.Atoi(table.field(row, "quantity"))
		if err != nil || quantity < 1 {
			quantity = 1
			report.Filled++
		}

		key := fmt.Sprintf("%d|%d|%d|%s", bookID, customerID, quantity, date)
		if seenID[id] || seenKey[key] {
			report.Duplicates++
			continue
		}
		seenID[id] = true
		seenKey[key] = true

		if prices[bookID] > threshold {
			highValue++
		}

		sales = append(sales, models.Sale{
			ID:         id,
			BookID:     bookID,
			CustomerID: customerID,
			Date:       date,
			Quantity:   quantity,
		})
	}

	return sales, report, highValue
}
