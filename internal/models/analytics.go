// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package models

// BookSalesSummary aggregates sales per book.
type BookSalesSummary struct {
	BookID       int64   `json:"book_id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	TotalSold    int64   `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// AuthorSalesSummary aggregates sales per author.
type AuthorSalesSummary struct {
	Author       string  `json:"author"`
	BooksSold    int64   `json:"books_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// CustomerSummary aggregates purchasing activity per customer.
type CustomerSummary struct {
	CustomerID        int64   `json:"customer_id"`
	Name              string  `json:"name"`
	TotalTransactions int64   `json:"total_transactions"`
	TotalBooksBought  int64   `json:"total_books_bought"`
	TotalSpent        float64 `json:"total_spent"`
}

// MonthlySalesSummary aggregates sales per calendar month (YYYY-MM).
type MonthlySalesSummary struct {
	Month        string  `json:"month"`
	Transactions int64   `json:"transactions"`
	BooksSold    int64   `json:"books_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// PriceRangeSummary reports sales volume within a price band.
type PriceRangeSummary struct {
	Range     string `json:"range"` // e.g. "20-30"
	BookCount int64  `json:"book_count"`
	UnitsSold int64  `json:"units_sold"`
}
