// Package analyze drives an end-to-end run: it resolves each input to a
// stream, selects a dialect, streams records, and either projects the
// requested columns or accumulates every column's distinct values and
// classifies them once all input is consumed.
package analyze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"csvfields/internal/dialect"
	"csvfields/internal/fields"
	pcsv "csvfields/internal/parser/csv"
)

// Options describe one invocation.
type Options struct {
	// Prog is the program name used to prefix error reports.
	Prog string

	// Dialect, when non-nil, is used for every file instead of sniffing.
	// Resolving a dialect name to a Dialect is the caller's job.
	Dialect *dialect.Dialect

	// Columns switches the run into projection mode when non-empty: the
	// named columns are echoed verbatim and no classification happens.
	Columns []string

	// Files are the input paths in command-line order. "-" means stdin;
	// an empty list is treated as a single "-".
	Files []string
}

// Run executes one invocation. Inputs are processed strictly in order, one
// at a time; a file that fails to open, sniff, or read is reported to stderr as
// "<prog>: <path>: <message>", counted, and skipped. The return value is the
// failure count, which is also the process exit code.
func Run(opt Options, stdin io.Reader, stdout, stderr io.Writer) int {
	files := opt.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	acc := fields.NewAccumulator()
	failures := 0
	for _, path := range files {
		if err := processFile(path, opt.Dialect, opt.Columns, stdin, stdout, acc); err != nil {
			fmt.Fprintf(stderr, "%s: %s: %s\n", opt.Prog, path, errorMessage(err))
			failures++
		}
	}

	if len(opt.Columns) == 0 {
		for _, col := range acc.Columns() {
			fields.Render(stdout, col, acc[col])
		}
	}
	return failures
}

// processFile drains one input. The file handle is scoped to this call and
// closed on every path; stdin is never closed.
func processFile(path string, fixed *dialect.Dialect, columns []string,
	stdin io.Reader, stdout io.Writer, acc fields.Accumulator) error {

	var src io.Reader
	if path == "-" {
		src = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	// Decode BOM-marked input, then buffer so the sniffer can peek at the
	// prefix without consuming it: the full stream, sample included, stays
	// available for parsing.
	br := bufio.NewReaderSize(pcsv.NewDecodingReader(src), dialect.SampleSize)

	var d dialect.Dialect
	if fixed != nil {
		d = *fixed
	} else {
		sample, err := br.Peek(dialect.SampleSize)
		if err != nil && err != io.EOF {
			return err
		}
		if d, err = dialect.Sniff(sample); err != nil {
			return err
		}
	}

	rd, err := pcsv.NewReader(br, d)
	if err != nil {
		return err
	}

	if len(columns) > 0 {
		return project(rd, columns, stdout)
	}

	for {
		rec, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		acc.Observe(rec)
	}
}

// project echoes the requested columns for every row of one file: a single
// tab-joined header line of the requested names, then one tab-joined line
// per row in command-line column order. A requested column absent from a row
// renders as an empty field.
func project(rd *pcsv.Reader, columns []string, stdout io.Writer) error {
	fmt.Fprintln(stdout, strings.Join(columns, "\t"))
	vals := make([]string, len(columns))
	for {
		rec, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		for i, c := range columns {
			vals[i] = rec[c]
		}
		fmt.Fprintln(stdout, strings.Join(vals, "\t"))
	}
}

// errorMessage extracts the message for an error report. Path errors reduce
// to the underlying system message so reports read like
// "prog: file.csv: no such file or directory".
func errorMessage(err error) string {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
