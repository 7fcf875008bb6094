// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

// Package services provides suture service wrappers for application
// components: the HTTP server and the scheduled recommendation rebuild
// loop.
package services
