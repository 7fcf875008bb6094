// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package recommend

import (
	"sort"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// dataset is an immutable snapshot of the catalog and sales history with the
// derived matrices. The engine swaps whole snapshots behind its lock; nothing
// mutates a dataset after build.
type dataset struct {
	books    []models.Book
	bookByID map[int64]models.Book

	// Interaction matrix: one row per purchasing customer, one column per
	// catalog book, cell = total quantity bought. Rows and columns are in
	// ascending ID order.
	interactions  [][]float64
	customerIDs   []int64
	customerIndex map[int64]int
	bookIDs       []int64
	bookIndex     map[int64]int

	// Feature matrix: one row per catalog book, [price, onehot(author)...].
	// Author columns are in first-seen order over books sorted by ID.
	features [][]float64

	sales []SaleRecord
}

// buildDataset derives the matrices from the catalog and sales history.
func buildDataset(books []models.Book, sales []SaleRecord) *dataset {
	sorted := make([]models.Book, len(books))
	copy(sorted, books)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	d := &dataset{
		books:         sorted,
		bookByID:      make(map[int64]models.Book, len(sorted)),
		customerIndex: make(map[int64]int),
		bookIndex:     make(map[int64]int, len(sorted)),
		sales:         sales,
	}

	d.bookIDs = make([]int64, len(sorted))
	for i, b := range sorted {
		d.bookIDs[i] = b.ID
		d.bookIndex[b.ID] = i
		d.bookByID[b.ID] = b
	}

	d.buildInteractionMatrix()
	d.buildFeatureMatrix()

	return d
}

// buildInteractionMatrix pivots sales into customer rows and book columns.
// Only customers with at least one sale get a row; a customer absent from the
// map is handled by the explicit fallback branch in the engine.
func (d *dataset) buildInteractionMatrix() {
	seen := make(map[int64]struct{})
	for _, s := range d.sales {
		if _, ok := d.bookIndex[s.BookID]; !ok {
			continue // sale references a book no longer in the catalog
		}
		if _, ok := seen[s.CustomerID]; !ok {
			seen[s.CustomerID] = struct{}{}
			d.customerIDs = append(d.customerIDs, s.CustomerID)
		}
	}
	sort.Slice(d.customerIDs, func(i, j int) bool { return d.customerIDs[i] < d.customerIDs[j] })

	for i, id := range d.customerIDs {
		d.customerIndex[id] = i
	}

	d.interactions = make([][]float64, len(d.customerIDs))
	for i := range d.interactions {
		d.interactions[i] = make([]float64, len(d.bookIDs))
	}

	for _, s := range d.sales {
		bi, ok := d.bookIndex[s.BookID]
		if !ok {
			continue
		}
		ci := d.customerIndex[s.CustomerID]
		d.interactions[ci][bi] += float64(s.Quantity)
	}
}

// buildFeatureMatrix builds one row per book: raw price followed by a one-hot
// author encoding.
func (d *dataset) buildFeatureMatrix() {
	authorIndex := make(map[string]int)
	for _, b := range d.books {
		if _, ok := authorIndex[b.Author]; !ok {
			authorIndex[b.Author] = len(authorIndex)
		}
	}

	width := 1 + len(authorIndex)
	d.features = make([][]float64, len(d.books))
	for i, b := range d.books {
		row := make([]float64, width)
		row[0] = b.Price
		row[1+authorIndex[b.Author]] = 1
		d.features[i] = row
	}
}

// popular returns the n best-selling books by total quantity, ties broken by
// ascending book ID. Books without sales are never included.
func (d *dataset) popular(n int) []Recommendation {
	if n <= 0 {
		return []Recommendation{}
	}

	totals := make(map[int64]int64)
	for _, s := range d.sales {
		if _, ok := d.bookIndex[s.BookID]; ok {
			totals[s.BookID] += int64(s.Quantity)
		}
	}

	ids := make([]int64, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > n {
		ids = ids[:n]
	}

	recs := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, d.recommendation(id, TypePopularity))
	}
	return recs
}

// lastPurchasedBook returns the book from the customer's most recent sale.
// Date strings compare lexically; ties go to the highest sale ID.
func (d *dataset) lastPurchasedBook(customerID int64) (int64, bool) {
	var (
		found  bool
		bookID int64
		date   string
		saleID int64
	)
	for _, s := range d.sales {
		if s.CustomerID != customerID {
			continue
		}
		if _, ok := d.bookIndex[s.BookID]; !ok {
			continue
		}
		if !found || s.Date > date || (s.Date == date && s.SaleID > saleID) {
			found = true
			bookID = s.BookID
			date = s.Date
			saleID = s.SaleID
		}
	}
	return bookID, found
}

// recommendation builds a Recommendation for a known catalog book.
func (d *dataset) recommendation(bookID int64, recType string) Recommendation {
	b := d.bookByID[bookID]
	return Recommendation{
		BookID: b.ID,
		Title:  b.Title,
		Author: b.Author,
		Price:  b.Price,
		Type:   recType,
	}
}
