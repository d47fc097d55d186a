package csv

import "strings"

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// stripHeaderBOM removes a UTF-8 BOM from the first header cell. The decode
// layer already drops a leading BOM from the stream, but a Reader built over
// an undecoded source still gets clean column names this way.
func stripHeaderBOM(headers []string) []string {
	if len(headers) == 0 {
		return headers
	}
	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	return headers
}
