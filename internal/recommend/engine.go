// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-labs/inkwell/internal/metrics"
)

// Engine serves recommendations from a cached dataset snapshot.
// It is safe for concurrent use: readers share one immutable snapshot and
// rebuilds swap the whole snapshot behind the lock.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider DataProvider

	mu   sync.RWMutex
	data *dataset
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, provider DataProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("data provider is required")
	}

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		provider: provider,
	}, nil
}

// Invalidate drops the cached dataset. The next request rebuilds it.
// Mutating handlers call this after changing books, customers, or sales.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.data = nil
	e.mu.Unlock()
	e.logger.Debug().Msg("dataset invalidated")
}

// Reload rebuilds the dataset immediately and swaps it in.
func (e *Engine) Reload(ctx context.Context) error {
	d, err := e.build(ctx, "reload")
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.data = d
	e.mu.Unlock()
	return nil
}

// Ready reports whether a dataset snapshot is currently cached.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.data != nil
}

// snapshot returns the cached dataset, building it first if necessary.
func (e *Engine) snapshot(ctx context.Context) (*dataset, error) {
	e.mu.RLock()
	d := e.data
	e.mu.RUnlock()
	if d != nil {
		return d, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data != nil {
		return e.data, nil
	}

	d, err := e.build(ctx, "lazy")
	if err != nil {
		return nil, err
	}
	e.data = d
	return d, nil
}

// build loads books and sales and derives a fresh dataset snapshot.
func (e *Engine) build(ctx context.Context, trigger string) (*dataset, error) {
	start := time.Now()

	books, err := e.provider.LoadRecommendationBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}
	sales, err := e.provider.LoadRecommendationSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	d := buildDataset(books, sales)
	metrics.RecordRebuild(trigger, time.Since(start))

	e.logger.Info().
		Str("trigger", trigger).
		Int("books", len(d.books)).
		Int("customers", len(d.customerIDs)).
		Int("sales", len(d.sales)).
		Dur("duration", time.Since(start)).
		Msg("dataset rebuilt")

	return d, nil
}

// PopularBooks returns the n best-selling books.
// Returns an empty slice when there are no sales.
func (e *Engine) PopularBooks(ctx context.Context, n int) ([]Recommendation, error) {
	metrics.RecordRecommendRequest(TypePopularity)
	if n <= 0 {
		return []Recommendation{}, nil
	}

	d, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return d.popular(n), nil
}

// CollaborativeForCustomer recommends up to n books bought by the customers
// most similar to the given one. Unknown customers and customers without
// purchases fall back to the popularity baseline.
func (e *Engine) CollaborativeForCustomer(ctx context.Context, customerID int64, n int) ([]Recommendation, error) {
	metrics.RecordRecommendRequest(TypeCollaborative)
	if n <= 0 {
		return []Recommendation{}, nil
	}

	d, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	row, ok := d.customerIndex[customerID]
	if !ok {
		metrics.RecordRecommendFallback(TypeCollaborative, "unknown_customer")
		e.logger.Debug().Int64("customer_id", customerID).Msg("customer has no purchase history, falling back to popular")
		return d.popular(n), nil
	}

	return e.collaborative(d, row, n), nil
}

// collaborative computes collaborative recommendations for a known matrix row.
// Candidates keep neighbor-rank-then-column order; they are an unranked union,
// not scored.
func (e *Engine) collaborative(d *dataset, row, n int) []Recommendation {
	if n <= 0 {
		return []Recommendation{}
	}

	target := d.interactions[row]
	neighbors := topSimilarRows(d.interactions, row, e.config.NeighborCount)

	recs := make([]Recommendation, 0, n)
	added := make(map[int64]struct{})
	for _, nb := range neighbors {
		for col, qty := range d.interactions[nb.index] {
			if qty <= 0 || target[col] > 0 {
				continue
			}
			id := d.bookIDs[col]
			if _, dup := added[id]; dup {
				continue
			}
			added[id] = struct{}{}
			recs = append(recs, d.recommendation(id, TypeCollaborative))
			if len(recs) == n {
				return recs
			}
		}
	}
	return recs
}

// ContentBasedForBook recommends up to n books with feature vectors most
// similar to the given book. Unknown books fall back to the popularity
// baseline.
func (e *Engine) ContentBasedForBook(ctx context.Context, bookID int64, n int) ([]Recommendation, error) {
	metrics.RecordRecommendRequest(TypeContentBased)
	if n <= 0 {
		return []Recommendation{}, nil
	}

	d, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	row, ok := d.bookIndex[bookID]
	if !ok {
		metrics.RecordRecommendFallback(TypeContentBased, "unknown_book")
		e.logger.Debug().Int64("book_id", bookID).Msg("book not in catalog, falling back to popular")
		return d.popular(n), nil
	}

	return e.contentBased(d, row, n), nil
}

// contentBased ranks all other books by feature similarity to the given row.
func (e *Engine) contentBased(d *dataset, row, n int) []Recommendation {
	neighbors := topSimilarRows(d.features, row, n)

	recs := make([]Recommendation, 0, len(neighbors))
	for _, nb := range neighbors {
		recs = append(recs, d.recommendation(d.bookIDs[nb.index], TypeContentBased))
	}
	return recs
}

// PersonalizedForCustomer blends collaborative and content-based strategies:
// n/2 collaborative picks, then content-based picks seeded from the
// customer's most recent purchase fill the remainder. Customers without
// purchases fall back to the popularity baseline.
//
// The two halves are concatenated collaborative-first and are not
// deduplicated against each other.
func (e *Engine) PersonalizedForCustomer(ctx context.Context, customerID int64, n int) ([]Recommendation, error) {
	metrics.RecordRecommendRequest("personalized")
	if n <= 0 {
		return []Recommendation{}, nil
	}

	d, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	row, ok := d.customerIndex[customerID]
	if !ok {
		metrics.RecordRecommendFallback("personalized", "no_purchases")
		e.logger.Debug().Int64("customer_id", customerID).Msg("customer has no purchase history, falling back to popular")
		return d.popular(n), nil
	}

	recs := e.collaborative(d, row, n/2)

	if remaining := n - len(recs); remaining > 0 {
		if lastBook, found := d.lastPurchasedBook(customerID); found {
			recs = append(recs, e.contentBased(d, d.bookIndex[lastBook], remaining)...)
		}
	}

	return recs, nil
}

// neighbor pairs a matrix row index with its similarity to a target row.
type neighbor struct {
	index      int
	similarity float64
}

// topSimilarRows returns up to k rows most similar to row by cosine
// similarity, excluding the row itself. Ties break toward the lower index
// for determinism.
func topSimilarRows(matrix [][]float64, row, k int) []neighbor {
	neighbors := make([]neighbor, 0, len(matrix))
	for i := range matrix {
		if i == row {
			continue
		}
		neighbors = append(neighbors, neighbor{
			index:      i,
			similarity: cosineSimilarity(matrix[row], matrix[i]),
		})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].index < neighbors[j].index
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
