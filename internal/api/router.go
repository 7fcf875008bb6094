// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/logging"
	"github.com/inkwell-labs/inkwell/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing table.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a new router for the given handler and configuration.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler: handler,
		chiMiddleware: NewChiMiddlewareFromSecurity(
			cfg.Security.CORSOrigins,
			cfg.Security.RateLimitReqs,
			cfg.Security.RateLimitWindow,
			cfg.Security.RateLimitDisabled,
		),
		staticDir: cfg.Server.StaticDir,
	}
}

// chiAdapter adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the plain middleware package
// composes with r.Use().
func chiAdapter(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware stack, applied to all routes in order.
	r.Use(chiAdapter(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogging())
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiAdapter(middleware.PrometheusMetrics))
		r.Use(chiAdapter(middleware.Compression))

		r.Route("/books", func(r chi.Router) {
			r.Get("/", router.handler.ListBooks)
			r.Post("/", router.handler.CreateBook)
			r.Get("/{id}", router.handler.GetBook)
			r.Put("/{id}", router.handler.UpdateBook)
			r.Delete("/{id}", router.handler.DeleteBook)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", router.handler.ListCustomers)
			r.Post("/", router.handler.CreateCustomer)
			r.Get("/{id}", router.handler.GetCustomer)
			r.Put("/{id}", router.handler.UpdateCustomer)
			r.Delete("/{id}", router.handler.DeleteCustomer)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", router.handler.ListSales)
			r.Post("/", router.handler.CreateSale)
			r.Get("/{id}", router.handler.GetSale)
			r.Put("/{id}", router.handler.UpdateSale)
			r.Delete("/{id}", router.handler.DeleteSale)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/popular", router.handler.RecommendPopular)
			r.Get("/customers/{id}", router.handler.RecommendForCustomer)
			r.Get("/customers/{id}/personalized", router.handler.RecommendPersonalized)
			r.Get("/books/{id}", router.handler.RecommendForBook)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/sales-by-book", router.handler.AnalyticsSalesByBook)
			r.Get("/authors", router.handler.AnalyticsAuthors)
			r.Get("/customers", router.handler.AnalyticsCustomers)
			r.Get("/monthly", router.handler.AnalyticsMonthly)
			r.Get("/price-ranges", router.handler.AnalyticsPriceRanges)
		})
	})

	// Health and metrics live outside /api/v1 for monitoring tooling.
	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Static frontend with SPA fallback.
	if router.staticDir != "" {
		r.NotFound(router.serveStaticOrIndex)
	}

	return r
}

// requestLogging returns a middleware that logs each request with
// method, path, status and duration.
func requestLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logging.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetRequestID(r.Context())).
				Msg("Request handled")
		})
	}
}

// serveStaticOrIndex serves static files from the configured directory,
// falling back to index.html for SPA routes.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	path := r.URL.Path

	// API routes never fall through to the SPA.
	if strings.HasPrefix(path, "/api/") {
		http.NotFound(w, r)
		return
	}

	switch {
	case strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css"):
		// Long cache for versioned assets
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".webp"):
		w.Header().Set("Cache-Control", "public, max-age=604800")
	default:
		// Short cache for HTML to allow quick updates
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	if path != "/" && router.fileExists(path) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	http.ServeFile(w, r, router.staticDir+"/index.html")
}

// fileExists checks if a regular file exists under the static directory.
func (router *Router) fileExists(path string) bool {
	f, err := http.Dir(router.staticDir).Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
