// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package models

// Sale represents a single sales transaction.
// Date is stored as a YYYY-MM-DD string.
type Sale struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"book_id"`
	CustomerID int64  `json:"customer_id"`
	Date       string `json:"date"`
	Quantity   int    `json:"quantity"`
}

// SaleDetail is the read model for a sale joined with its book and customer.
type SaleDetail struct {
	Sale
	BookTitle    string  `json:"book_title"`
	BookPrice    float64 `json:"book_price"`
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"` // Quantity * BookPrice
}

// SaleRequest is the payload for creating or updating a sale.
type SaleRequest struct {
	BookID     int64  `json:"book_id" validate:"required,gt=0"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity   int    `json:"quantity" validate:"gte=1"`
}
