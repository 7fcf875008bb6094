// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

/*
Package api provides the HTTP layer for the bookstore backend.

All endpoints live under /api/v1 and return a standardized JSON
envelope (see APIResponse). Routing uses Chi with production-hardened
middleware from the Chi ecosystem: go-chi/cors for CORS handling and
go-chi/httprate for IP-based rate limiting.

Endpoint groups:

  - /api/v1/books, /api/v1/customers, /api/v1/sales: CRUD over the
    core entities
  - /api/v1/analytics/*: read-only sales aggregations
  - /api/v1/recommendations/*: popularity, collaborative, content-based
    and personalized recommendations
  - /health: liveness and database connectivity
  - /metrics: Prometheus exposition

Mutating handlers invalidate the recommendation engine's cached
dataset so the next recommendation request sees fresh data.
*/
package api
