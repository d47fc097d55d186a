package dialect

import (
	"bytes"
	"errors"
	"strings"
)

// SampleSize is how many bytes of prefix Sniff expects to inspect. Callers
// peek at most this much from the head of the stream without consuming it,
// so the full content remains available for record parsing afterwards.
const SampleSize = 1024

// ErrUndetectable is returned when no candidate delimiter appears with a
// consistent per-line count in the sample.
var ErrUndetectable = errors.New("could not determine delimiter")

// candidates are tried in preference order; the first delimiter that occurs
// the same non-zero number of times on every sampled line wins.
var candidates = []rune{',', '\t', ';', '|', ':'}

// Sniff infers a Dialect from a prefix of the input. When the sample was cut
// mid-stream (a full SampleSize bytes with trailing data missing) the final
// partial line would skew the counts, so everything after the last newline is
// dropped first, mirroring the cut-to-last-newline discipline used when
// probing remote files.
func Sniff(sample []byte) (Dialect, error) {
	if len(sample) == SampleSize {
		if i := bytes.LastIndexByte(sample, '\n'); i > 0 {
			sample = sample[:i+1]
		}
	}

	lines := sampleLines(sample)
	if len(lines) == 0 {
		return Dialect{}, ErrUndetectable
	}

	for _, comma := range candidates {
		if !consistentCount(lines, comma) {
			continue
		}
		return Dialect{
			Name:       "sniffed",
			Comma:      comma,
			LazyQuotes: !quotedFields(lines, comma),
		}, nil
	}
	return Dialect{}, ErrUndetectable
}

// sampleLines splits the sample into non-empty lines, tolerating CRLF
// endings and a missing final newline.
func sampleLines(sample []byte) []string {
	var lines []string
	for _, l := range strings.Split(string(sample), "\n") {
		l = strings.TrimSuffix(l, "\r")
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// consistentCount reports whether comma occurs the same non-zero number of
// times, outside quoted regions, on every line.
func consistentCount(lines []string, comma rune) bool {
	want := -1
	for _, l := range lines {
		n := countOutsideQuotes(l, comma)
		if n == 0 {
			return false
		}
		if want == -1 {
			want = n
		} else if n != want {
			return false
		}
	}
	return want > 0
}

// countOutsideQuotes counts occurrences of comma in line, treating '"' as a
// quote toggle so delimiters embedded in quoted fields are not counted.
func countOutsideQuotes(line string, comma rune) int {
	n := 0
	inQuote := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == comma && !inQuote:
			n++
		}
	}
	return n
}

// quotedFields reports whether the sample visibly quotes its fields (a field
// that starts with '"' at the beginning of a line or right after the
// delimiter). When it does, strict quote handling is safe to enforce.
func quotedFields(lines []string, comma rune) bool {
	for _, l := range lines {
		prev := comma
		for _, r := range l {
			if r == '"' && prev == comma {
				return true
			}
			prev = r
		}
	}
	return false
}
