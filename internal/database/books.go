// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/inkwell-labs/inkwell/internal/metrics"
	"github.com/inkwell-labs/inkwell/internal/models"
)

// ListBooks retrieves all books ordered by ID.
func (db *DB) ListBooks(ctx context.Context) (books []models.Book, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("list", "books", time.Since(start), err) }()

	query := `SELECT BookID, Title, Author, Price FROM Books ORDER BY BookID`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var b models.Book
		if err = rows.Scan(&b.ID, &b.Title, &b.Author, &b.Price); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

// GetBook retrieves a book by ID. Returns ErrBookNotFound if no row exists.
func (db *DB) GetBook(ctx context.Context, id int64) (book *models.Book, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("get", "books", time.Since(start), err) }()

	query := `SELECT BookID, Title, Author, Price FROM Books WHERE BookID = ?`

	stmt, err := db.prepareStmt(ctx, query)
	if err != nil {
		return nil, err
	}

	var b models.Book
	err = stmt.QueryRowContext(ctx, id).Scan(&b.ID, &b.Title, &b.Author, &b.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book %d: %w", id, err)
	}

	return &b, nil
}

// CreateBook inserts a new book and returns it with the assigned ID.
// IDs are assigned as MAX(BookID)+1; the embedded database has a single
// writer process so this does not race.
func (db *DB) CreateBook(ctx context.Context, req *models.BookRequest) (book *models.Book, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "books", time.Since(start), err) }()

	query := `INSERT INTO Books (BookID, Title, Author, Price)
		SELECT COALESCE(MAX(BookID), 0) + 1, ?, ?, ? FROM Books
		RETURNING BookID`

	var id int64
	if err = db.conn.QueryRowContext(ctx, query, req.Title, req.Author, req.Price).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &models.Book{ID: id, Title: req.Title, Author: req.Author, Price: req.Price}, nil
}

// UpdateBook updates an existing book. Returns ErrBookNotFound if no row exists.
func (db *DB) UpdateBook(ctx context.Context, id int64, req *models.BookRequest) (book *models.Book, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "books", time.Since(start), err) }()

	query := `UPDATE Books SET Title = ?, Author = ?, Price = ? WHERE BookID = ?`

	res, err := db.conn.ExecContext(ctx, query, req.Title, req.Author, req.Price, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrBookNotFound
	}

	return &models.Book{ID: id, Title: req.Title, Author: req.Author, Price: req.Price}, nil
}

// DeleteBook removes a book by ID. Returns ErrBookNotFound if no row exists.
func (db *DB) DeleteBook(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("delete", "books", time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM Books WHERE BookID = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
