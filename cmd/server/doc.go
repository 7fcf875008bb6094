// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

/*
Package main is the entry point for the Inkwell server application.

Inkwell is a bookstore management backend that exposes a REST API for
managing the book catalog, customers, and sales, plus analytics queries
and a book recommendation engine.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("inkwell")
	├── EngineSupervisor ("engine-layer")
	│   └── Rebuild Service (periodic recommendation dataset refresh)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router, REST endpoints)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB storage for books, customers, and sales
 4. CSV Import: optional one-shot import of catalog and sales data
 5. Recommendation Engine: in-memory dataset with four strategies
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_HOST=0.0.0.0            # Listen address
	HTTP_PORT=8080               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Database
	DUCKDB_PATH=inkwell.db       # DuckDB file path (":memory:" for ephemeral)

	# Import (optional, runs once at startup when set)
	IMPORT_BOOKS_CSV=books.csv
	IMPORT_CUSTOMERS_CSV=customers.csv
	IMPORT_SALES_CSV=sales.csv

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:
  - Stops accepting new connections
  - Waits for in-flight requests to complete (10s timeout)
  - Closes the database connection
*/
package main
