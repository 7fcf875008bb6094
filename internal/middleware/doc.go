// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for request ID tracking,
gzip compression, and Prometheus metrics instrumentation. The components
are plain http.HandlerFunc wrappers so they compose with both the Chi
router (via an adapter) and hand-built handlers in tests.
*/
package middleware
