// Package dialect describes the tokenizing conventions of a CSV stream
// (delimiter, quoting strictness) and can infer them from a raw sample when
// no dialect is named explicitly.
package dialect

import "sort"

// Dialect holds the conventions used to tokenize one CSV input.
type Dialect struct {
	// Name is the registry name, or "sniffed" for an inferred dialect.
	Name string

	// Comma is the field delimiter.
	Comma rune

	// LazyQuotes relaxes quote handling: a quote may appear in an unquoted
	// field and a non-doubled quote may appear in a quoted field. Named
	// dialects and inferred dialects without visible quoting enable it so
	// messy real-world exports still parse row by row.
	LazyQuotes bool
}

// registry holds the conventional named dialects. The set mirrors the
// dialects commonly understood by CSV tooling: "excel" (comma), "excel-tab"
// (tab) and "unix" (comma, every field quoted on write).
var registry = map[string]Dialect{
	"excel":     {Name: "excel", Comma: ',', LazyQuotes: true},
	"excel-tab": {Name: "excel-tab", Comma: '\t', LazyQuotes: true},
	"unix":      {Name: "unix", Comma: ',', LazyQuotes: true},
}

// Names returns the registered dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a registered dialect by name.
func Lookup(name string) (Dialect, bool) {
	d, ok := registry[name]
	return d, ok
}
