// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

/*
Package importer loads bookstore data from CSV files into DuckDB.

Source files are cleaned before insertion:

  - Duplicate rows are dropped. Books and customers dedupe on their ID;
    sales dedupe on the (BookID, CustomerID, Quantity, Date) tuple.
  - A missing or unparseable book price is replaced with the mean of
    the prices present in the file.
  - A missing or unparseable sale quantity defaults to 1.
  - Sales of books priced above the configured threshold are counted as
    high-value in the import report. The flag is reporting-only and is
    not stored.

Inserts run in one transaction per entity. When an insert rate is
configured the importer paces batches with a golang.org/x/time/rate
limiter so a large backfill does not saturate the database.
*/
package importer
