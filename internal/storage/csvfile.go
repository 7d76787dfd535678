package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Record is one row of a CSV store, keyed by field name.
type Record map[string]string

// CSVFile is a whole-file record store over one comma-delimited text file.
// The first line is the header; every record is one subsequent line. Each
// CSVFile owns its backing file exclusively and serializes read-modify-write
// cycles with an internal lock, so concurrent handlers cannot interleave a
// partial rewrite with a read.
type CSVFile struct {
	mu     sync.RWMutex
	path   string
	fields []string
}

// NewCSVFile creates a store for path with a fixed field-name list. The file
// itself is created lazily on first append or rewrite.
func NewCSVFile(path string, fields []string) *CSVFile {
	return &CSVFile{path: path, fields: fields}
}

// Path returns the backing file path.
func (f *CSVFile) Path() string { return f.path }

// Fields returns the header field names.
func (f *CSVFile) Fields() []string { return f.fields }

// ReadAll returns every record in file order. A missing file is not an
// error: it reads as an empty store.
func (f *CSVFile) ReadAll() ([]Record, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.readAll()
}

func (f *CSVFile) readAll() ([]Record, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Append writes exactly one new row, creating the file with its header when
// absent. No field is checked for uniqueness.
func (f *CSVFile) Append(rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, statErr := os.Stat(f.path)
	newFile := os.IsNotExist(statErr)
	if newFile {
		if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", f.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if newFile {
		if err := writer.Write(f.fields); err != nil {
			return fmt.Errorf("write header to %s: %w", f.path, err)
		}
	}
	if err := writer.Write(f.rowFor(rec)); err != nil {
		return fmt.Errorf("write record to %s: %w", f.path, err)
	}
	writer.Flush()
	return writer.Error()
}

// Delete removes the record whose "id" field equals id (string comparison)
// and rewrites the file. Returns ErrNotFound when no row matched. Deleting
// the last record leaves a header-only file rather than stale rows.
func (f *CSVFile) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	records, err := f.readAll()
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec["id"] == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrNotFound
	}
	return f.writeAll(kept)
}

// WriteAll rewrites the entire file unconditionally with the fixed header.
// Used by edit-in-place flows.
func (f *CSVFile) WriteAll(records []Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeAll(records)
}

// writeAll replaces the backing file atomically: the new content goes to a
// temp file in the same directory which is then renamed over the original, so
// a crash mid-write never leaves a truncated store behind.
func (f *CSVFile) writeAll(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(f.fields); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(f.rowFor(rec)); err != nil {
			tmp.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func (f *CSVFile) rowFor(rec Record) []string {
	row := make([]string, len(f.fields))
	for i, name := range f.fields {
		row[i] = rec[name]
	}
	return row
}
