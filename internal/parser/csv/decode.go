package csv

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewDecodingReader wraps r so that a leading byte-order mark selects the
// input character encoding: UTF-16 of either endianness is transcoded to
// UTF-8 and a UTF-8 BOM is dropped. Input without a BOM passes through
// unchanged. Spreadsheet exports routinely carry both kinds of BOM, so every
// input goes through this before sniffing and parsing.
func NewDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
