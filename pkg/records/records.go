// Package records defines the row representation shared by the CSV reader,
// the projection path, and the field accumulator.
package records

// Record is one parsed data row: a mapping from header-declared column name
// to the raw string value from that row. Values are kept byte-for-byte as
// they appeared in the input; columns missing from a short row are absent
// from the map rather than present with an empty value.
type Record map[string]string
