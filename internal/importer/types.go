// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package importer

import (
	"time"
)

// EntityReport holds per-entity import statistics.
type EntityReport struct {
	// RowsRead is the number of data rows read from the CSV file.
	RowsRead int `json:"rows_read"`

	// Duplicates is the number of rows dropped as duplicates.
	Duplicates int `json:"duplicates"`

	// Filled is the number of rows where a missing or invalid value
	// was replaced with a default.
	Filled int `json:"filled"`

	// Skipped is the number of rows dropped as unusable.
	Skipped int `json:"skipped"`

	// Inserted is the number of rows written to the database.
	Inserted int `json:"inserted"`
}

// ImportReport summarizes a full import run.
type ImportReport struct {
	Books     EntityReport `json:"books"`
	Customers EntityReport `json:"customers"`
	Sales     EntityReport `json:"sales"`

	// HighValueSales counts sales of books priced above the configured
	// threshold. Reporting-only; the flag is not persisted.
	HighValueSales int `json:"high_value_sales"`

	// StartTime is when the import started.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the import completed.
	EndTime time.Time `json:"end_time"`
}

// Duration returns the duration of the import run.
func (r *ImportReport) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// TotalInserted returns the number of rows inserted across all entities.
func (r *ImportReport) TotalInserted() int {
	return r.Books.Inserted + r.Customers.Inserted + r.Sales.Inserted
}
