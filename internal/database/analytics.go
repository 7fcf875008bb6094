// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkwell/internal/database/query"
	"github.com/inkwell-labs/inkwell/internal/metrics"
	"github.com/inkwell-labs/inkwell/internal/models"
)

// AnalyticsFilter narrows analytics queries. Zero values mean no filtering.
type AnalyticsFilter struct {
	StartDate   string // YYYY-MM-DD, inclusive
	EndDate     string // YYYY-MM-DD, inclusive
	Authors     []string
	CustomerIDs []int64
}

func (f *AnalyticsFilter) whereClause() (string, []interface{}) {
	wb := query.NewWhereBuilder()
	if f != nil {
		wb.AddDateRange(f.StartDate, f.EndDate)
		wb.AddAuthors(f.Authors)
		wb.AddCustomers(f.CustomerIDs)
	}
	return wb.Build()
}

// SalesByBook aggregates total units sold and revenue per book,
// best sellers first.
func (db *DB) SalesByBook(ctx context.Context, filter *AnalyticsFilter) (summaries []models.BookSalesSummary, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("analytics", "sales_by_book", time.Since(start), err) }()

	where, args := filter.whereClause()
	q := fmt.Sprintf(`SELECT
			b.BookID, b.Title, b.Author,
			SUM(s.Quantity) AS TotalSold,
			SUM(s.Quantity * b.Price) AS TotalRevenue
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		WHERE %s
		GROUP BY b.BookID, b.Title, b.Author
		ORDER BY TotalSold DESC, b.BookID`, where)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales by book: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var s models.BookSalesSummary
		if err = rows.Scan(&s.BookID, &s.Title, &s.Author, &s.TotalSold, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan book sales summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book sales summaries: %w", err)
	}

	return summaries, nil
}

// BestsellingAuthors aggregates units sold and revenue per author,
// best sellers first.
func (db *DB) BestsellingAuthors(ctx context.Context, filter *AnalyticsFilter) (summaries []models.AuthorSalesSummary, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("analytics", "bestselling_authors", time.Since(start), err) }()

	where, args := filter.whereClause()
	q := fmt.Sprintf(`SELECT
			b.Author,
			SUM(s.Quantity) AS BooksSold,
			SUM(s.Quantity * b.Price) AS TotalRevenue
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		WHERE %s
		GROUP BY b.Author
		ORDER BY BooksSold DESC, b.Author`, where)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bestselling authors: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var s models.AuthorSalesSummary
		if err = rows.Scan(&s.Author, &s.BooksSold, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan author summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate author summaries: %w", err)
	}

	return summaries, nil
}

// TopCustomers aggregates purchasing activity per customer,
// biggest spenders first.
func (db *DB) TopCustomers(ctx context.Context, filter *AnalyticsFilter) (summaries []models.CustomerSummary, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("analytics", "top_customers", time.Since(start), err) }()

	where, args := filter.whereClause()
	q := fmt.Sprintf(`SELECT
			c.CustomerID, c.Name,
			COUNT(*) AS TotalTransactions,
			SUM(s.Quantity) AS TotalBooksBought,
			SUM(s.Quantity * b.Price) AS TotalSpent
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		JOIN Customers c ON s.CustomerID = c.CustomerID
		WHERE %s
		GROUP BY c.CustomerID, c.Name
		ORDER BY TotalSpent DESC, c.CustomerID`, where)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var s models.CustomerSummary
		if err = rows.Scan(&s.CustomerID, &s.Name, &s.TotalTransactions, &s.TotalBooksBought, &s.TotalSpent); err != nil {
			return nil, fmt.Errorf("failed to scan customer summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer summaries: %w", err)
	}

	return summaries, nil
}

// MonthlySales aggregates transactions, units, and revenue per calendar month.
func (db *DB) MonthlySales(ctx context.Context, filter *AnalyticsFilter) (summaries []models.MonthlySalesSummary, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("analytics", "monthly_sales", time.Since(start), err) }()

	where, args := filter.whereClause()
	q := fmt.Sprintf(`SELECT
			substr(s.Date, 1, 7) AS Month,
			COUNT(*) AS Transactions,
			SUM(s.Quantity) AS BooksSold,
			SUM(s.Quantity * b.Price) AS TotalRevenue
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		WHERE %s
		GROUP BY Month
		ORDER BY Month`, where)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly sales: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var s models.MonthlySalesSummary
		if err = rows.Scan(&s.Month, &s.Transactions, &s.BooksSold, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly summaries: %w", err)
	}

	return summaries, nil
}

// PriceRangeAnalysis buckets sales volume into fixed price bands.
func (db *DB) PriceRangeAnalysis(ctx context.Context, filter *AnalyticsFilter) (summaries []models.PriceRangeSummary, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("analytics", "price_ranges", time.Since(start), err) }()

	where, args := filter.whereClause()
	q := fmt.Sprintf(`SELECT
			CASE
				WHEN b.Price < 10 THEN '0-10'
				WHEN b.Price < 20 THEN '10-20'
				WHEN b.Price < 30 THEN '20-30'
				WHEN b.Price < 40 THEN '30-40'
				ELSE '40+'
			END AS PriceRange,
			COUNT(DISTINCT b.BookID) AS BookCount,
			SUM(s.Quantity) AS UnitsSold
		FROM Sales s
		JOIN Books b ON s.BookID = b.BookID
		WHERE %s
		GROUP BY PriceRange
		ORDER BY PriceRange`, where)

	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price ranges: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var s models.PriceRangeSummary
		if err = rows.Scan(&s.Range, &s.BookCount, &s.UnitsSold); err != nil {
			return nil, fmt.Errorf("failed to scan price range summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate price range summaries: %w", err)
	}

	return summaries, nil
}
