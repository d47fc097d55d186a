package dialect_test

import (
	"bytes"
	"errors"
	"testing"

	"csvfields/internal/dialect"
)

func TestSniffDelimiters(t *testing.T) {
	cases := []struct {
		name   string
		sample string
		comma  rune
	}{
		{"comma", "a,b,c\n1,2,3\n4,5,6\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\n1\t2\n", '\t'},
		{"pipe", "a|b\n1|2\n", '|'},
		{"crlf", "a,b\r\n1,2\r\n", ','},
		{"quoted delimiter ignored", "a,b\n\"x,y\",2\n", ','},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dialect.Sniff([]byte(tc.sample))
			if err != nil {
				t.Fatalf("sniff: %v", err)
			}
			if d.Comma != tc.comma {
				t.Fatalf("comma = %q, want %q", d.Comma, tc.comma)
			}
		})
	}
}

func TestSniffPrefersCommaOverColon(t *testing.T) {
	// Both "," and ":" are consistent here; the earlier candidate wins.
	d, err := dialect.Sniff([]byte("a:1,b:2\nc:3,d:4\n"))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if d.Comma != ',' {
		t.Fatalf("comma = %q, want ','", d.Comma)
	}
}

func TestSniffQuoting(t *testing.T) {
	d, err := dialect.Sniff([]byte("\"a\",\"b\"\n\"1\",\"2\"\n"))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if d.LazyQuotes {
		t.Fatalf("visible field quoting should select strict quote handling")
	}

	d, err = dialect.Sniff([]byte("a,b\n1,2\n"))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if !d.LazyQuotes {
		t.Fatalf("unquoted input should stay lenient")
	}
}

func TestSniffUndetectable(t *testing.T) {
	for _, sample := range []string{"", "justoneword\n", "no delimiters here\nat all\n", "a,b\n1;2\n"} {
		_, err := dialect.Sniff([]byte(sample))
		if !errors.Is(err, dialect.ErrUndetectable) {
			t.Fatalf("sample %q: err = %v, want ErrUndetectable", sample, err)
		}
	}
}

func TestSniffCutsTruncatedSample(t *testing.T) {
	// Build exactly SampleSize bytes ending mid-record with no delimiter in
	// the partial tail; the tail must be cut at the last newline rather than
	// break delimiter consistency.
	var b bytes.Buffer
	b.WriteString("a,b,c\n")
	for b.Len() < dialect.SampleSize-3 {
		b.WriteString("1,2,3\n")
	}
	b.Truncate(dialect.SampleSize - 3)
	b.WriteString("xyz")

	d, err := dialect.Sniff(b.Bytes())
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if d.Comma != ',' {
		t.Fatalf("comma = %q, want ','", d.Comma)
	}
}

func TestSniffShortSampleKeepsLastLine(t *testing.T) {
	// A sample shorter than SampleSize is the complete input; a final line
	// without a trailing newline still participates.
	d, err := dialect.Sniff([]byte("a,b\n1,2"))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if d.Comma != ',' {
		t.Fatalf("comma = %q, want ','", d.Comma)
	}

	// And an inconsistent final line is still detected.
	if _, err := dialect.Sniff([]byte("a,b\n1,2\nbroken")); !errors.Is(err, dialect.ErrUndetectable) {
		t.Fatalf("err = %v, want ErrUndetectable", err)
	}
}
