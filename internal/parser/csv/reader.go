// Package csv turns a decoded byte stream into a lazy sequence of
// header-keyed records under a given dialect. The sequence is single-pass:
// consuming it advances the underlying stream irreversibly.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"csvfields/internal/dialect"
	"csvfields/pkg/records"
)

// Reader streams records from one CSV input. The first row is the header; it
// supplies the column names for every subsequent record.
//
// Row-width policy:
//   - Rows with fewer fields than the header produce records missing the
//     trailing columns (absent keys, not empty strings).
//   - Fields beyond the header width are ignored.
//   - Rows the underlying parser rejects are skipped and counted; a bad row
//     never aborts the file.
type Reader struct {
	cr      *csv.Reader
	header  []string
	skipped int
}

// NewReader builds a Reader over r using the dialect's delimiter and quoting
// rules, and consumes the header row immediately. An input with no rows at
// all yields a Reader whose Next returns io.EOF straight away.
func NewReader(r io.Reader, d dialect.Dialect) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = d.Comma
	cr.LazyQuotes = d.LazyQuotes
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	rd := &Reader{cr: cr}
	h, err := cr.Read()
	if err == io.EOF {
		return rd, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	rd.header = stripHeaderBOM(h)
	return rd, nil
}

// Header returns the column names from the header row, in file order.
func (r *Reader) Header() []string { return r.header }

// Next returns the next record, or io.EOF once the input is exhausted.
// Malformed rows are skipped internally and never surface; an error from the
// underlying stream is returned to the caller, since retrying it cannot make
// progress.
func (r *Reader) Next() (records.Record, error) {
	if len(r.header) == 0 {
		return nil, io.EOF
	}
	for {
		row, err := r.cr.Read()
		if err == io.EOF {
			return nil, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Soft-fail this row and continue.
			r.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		n := len(row)
		if n > len(r.header) {
			n = len(r.header)
		}
		rec := make(records.Record, n)
		for i := 0; i < n; i++ {
			rec[r.header[i]] = row[i]
		}
		return rec, nil
	}
}

// Skipped reports how many rows were dropped due to parse errors.
func (r *Reader) Skipped() int { return r.skipped }
