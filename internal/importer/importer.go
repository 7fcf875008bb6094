// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package importer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/database"
	"github.com/inkwell-labs/inkwell/internal/logging"
	"github.com/inkwell-labs/inkwell/internal/metrics"
	"github.com/inkwell-labs/inkwell/internal/models"
)

// Importer loads and cleans bookstore CSVs into the database.
type Importer struct {
	cfg     *config.ImportConfig
	db      *database.DB
	limiter *rate.Limiter // nil when pacing is disabled

	mu      sync.Mutex
	running bool
}

// New creates a new CSV importer.
func New(cfg *config.ImportConfig, db *database.DB) *Importer {
	var limiter *rate.Limiter
	if cfg.InsertRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.InsertRate), cfg.InsertRate)
	}

	return &Importer{
		cfg:     cfg,
		db:      db,
		limiter: limiter,
	}
}

// Run imports all configured CSV files. Entities with no configured
// path are skipped. Books and customers import before sales so the
// high-value report can resolve book prices.
func (i *Importer) Run(ctx context.Context) (*ImportReport, error) {
	i.mu.Lock()
	if i.running {
		i.mu.Unlock()
		return nil, fmt.Errorf("import already in progress")
	}
	i.running = true
	i.mu.Unlock()

	defer func() {
		i.mu.Lock()
		i.running = false
		i.mu.Unlock()
	}()

	report := &ImportReport{StartTime: time.Now()}
	defer func() {
		report.EndTime = time.Now()
		metrics.ImportDuration.Observe(report.Duration().Seconds())
	}()

	prices := make(map[int64]float64)

	if i.cfg.BooksCSV != "" {
		table, err := readCSV(i.cfg.BooksCSV)
		if err != nil {
			return report, err
		}
		if err := table.requireColumns("bookid", "title", "author", "price"); err != nil {
			return report, fmt.Errorf("books CSV: %w", err)
		}

		books, entityReport := cleanBooks(table)
		metrics.ImportRowsRead.WithLabelValues("books").Add(float64(entityReport.RowsRead))

		if err := i.insertBooks(ctx, books); err != nil {
			report.Books = entityReport
			return report, err
		}

		entityReport.Inserted = len(books)
		report.Books = entityReport
		metrics.ImportRowsInserted.WithLabelValues("books").Add(float64(len(books)))

		for _, b := range books {
			prices[b.ID] = b.Price
		}

		logging.Info().
			Int("rows_read", entityReport.RowsRead).
			Int("duplicates", entityReport.Duplicates).
			Int("filled_prices", entityReport.Filled).
			Int("inserted", entityReport.Inserted).
			Msg("Imported books")
	}

	if i.cfg.CustomersCSV != "" {
		table, err := readCSV(i.cfg.CustomersCSV)
		if err != nil {
			return report, err
		}
		if err := table.requireColumns("customerid", "name"); err != nil {
			return report, fmt.Errorf("customers CSV: %w", err)
		}

		customers, entityReport := cleanCustomers(table)
		metrics.ImportRowsRead.WithLabelValues("customers").Add(float64(entityReport.RowsRead))

		if err := i.insertCustomers(ctx, customers); err != nil {
			report.Customers = entityReport
			return report, err
		}

		entityReport.Inserted = len(customers)
		report.Customers = entityReport
		metrics.ImportRowsInserted.WithLabelValues("customers").Add(float64(len(customers)))

		logging.Info().
			Int("rows_read", entityReport.RowsRead).
			Int("duplicates", entityReport.Duplicates).
			Int("inserted", entityReport.Inserted).
			Msg("Imported customers")
	}

	if i.cfg.SalesCSV != "" {
		if len(prices) == 0 {
			// No books CSV this run; resolve prices from the catalog.
			books, err := i.db.ListBooks(ctx)
			if err != nil {
				return report, fmt.Errorf("failed to load catalog prices: %w", err)
			}
			for _, b := range books {
				prices[b.ID] = b.Price
			}
		}

		table, err := readCSV(i.cfg.SalesCSV)
		if err != nil {
			return report, err
		}
		if err := table.requireColumns("saleid", "bookid", "customerid", "date", "quantity"); err != nil {
			return report, fmt.Errorf("sales CSV: %w", err)
		}

		sales, entityReport, highValue := cleanSales(table, prices, i.cfg.HighValueThreshold)
		metrics.ImportRowsRead.WithLabelValues("sales").Add(float64(entityReport.RowsRead))

		if err := i.insertSales(ctx, sales); err != nil {
			report.Sales = entityReport
			return report, err
		}

		entityReport.Inserted = len(sales)
		report.Sales = entityReport
		report.HighValueSales = highValue
		metrics.ImportRowsInserted.WithLabelValues("sales").Add(float64(len(sales)))

		logging.Info().
			Int("rows_read", entityReport.RowsRead).
			Int("duplicates", entityReport.Duplicates).
			Int("filled_quantities", entityReport.Filled).
			Int("high_value", highValue).
			Int("inserted", entityReport.Inserted).
			Msg("Imported sales")
	}

	logging.Info().
		Int("total_inserted", report.TotalInserted()).
		Dur("duration", report.Duration()).
		Msg("Import completed")

	return report, nil
}

// pace blocks until the rate limiter grants capacity for n rows.
func (i *Importer) pace(ctx context.Context, n int) error {
	if i.limiter == nil || n == 0 {
		return nil
	}

	// WaitN cannot exceed the limiter burst; pace in burst-sized chunks.
	burst := i.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := i.limiter.WaitN(ctx, chunk); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
		n -= chunk
	}
	return nil
}

func (i *Importer) insertBooks(ctx context.Context, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}
	if err := i.pace(ctx, len(books)); err != nil {
		return err
	}
	return i.db.InsertBooks(ctx, books)
}

func (i *Importer) insertCustomers(ctx context.Context, customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	if err := i.pace(ctx, len(customers)); err != nil {
		return err
	}
	return i.db.InsertCustomers(ctx, customers)
}

func (i *Importer) insertSales(ctx context.Context, sales []models.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	if err := i.pace(ctx, len(sales)); err != nil {
		return err
	}
	return i.db.InsertSales(ctx, sales)
}
