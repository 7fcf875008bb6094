// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

// Package recommend implements the book recommendation engine.
//
// Four strategies are provided: popularity, collaborative filtering over
// customer purchase vectors, content-based over book feature vectors, and a
// personalized blend of the latter two. All strategies read from a cached
// dataset built from the sales history; the engine rebuilds it on demand
// and on a schedule.
package recommend

import (
	"context"

	"github.com/inkwell-labs/inkwell/internal/models"
)

// Recommendation strategy tags, reported on every recommendation so clients
// can see which strategy produced it.
const (
	TypePopularity    = "popularity_based"
	TypeCollaborative = "collaborative_filtering"
	TypeContentBased  = "content_based"
)

// Recommendation is a single recommended book.
type Recommendation struct {
	BookID int64   `json:"book_id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
	Type   string  `json:"recommendation_type"`
}

// SaleRecord is one sales transaction joined with the customer name,
// as loaded for dataset builds.
type SaleRecord struct {
	SaleID       int64
	BookID       int64
	CustomerID   int64
	CustomerName string
	Date         string // YYYY-MM-DD
	Quantity     int
}

// DataProvider is the engine's data source. The database layer implements it;
// the indirection keeps this package free of database imports.
type DataProvider interface {
	// LoadRecommendationBooks returns the full catalog ordered by ID.
	LoadRecommendationBooks(ctx context.Context) ([]models.Book, error)

	// LoadRecommendationSales returns all sales joined with customer names.
	LoadRecommendationSales(ctx context.Context) ([]SaleRecord, error)
}
