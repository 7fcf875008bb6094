// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// csvTable is a parsed CSV file with header-based column access.
type csvTable struct {
	columns map[string]int
	rows    [][]string
}

// readCSV parses the file at path. The first row is treated as a
// header; column names are matched case-insensitively.
func readCSV(path string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return &csvTable{columns: columns, rows: records[1:]}, nil
}

// requireColumns verifies that the header contains every named column.
func (t *csvTable) requireColumns(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

// field returns the trimmed value of the named column for a row.
// Returns empty string when the column is absent or the row is short.
func (t *csvTable) field(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
