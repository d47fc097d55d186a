package csv_test

import (
	"encoding/binary"
	"io"
	"reflect"
	"strings"
	"testing"
	"unicode/utf16"

	pcsv "csvfields/internal/parser/csv"
)

// utf16le encodes s as UTF-16 little-endian with a BOM, the way spreadsheet
// "Unicode text" exports are written.
func utf16le(s string) []byte {
	units := utf16.Encode([]rune("\uFEFF" + s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

func TestDecodeUTF16LE(t *testing.T) {
	src := pcsv.NewDecodingReader(strings.NewReader(string(utf16le("a,b\n1,2\n"))))
	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "a,b\n1,2\n" {
		t.Fatalf("decoded = %q", got)
	}
}

func TestDecodeUTF8BOMDropped(t *testing.T) {
	src := pcsv.NewDecodingReader(strings.NewReader("\uFEFFa,b\n"))
	got, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "a,b\n" {
		t.Fatalf("decoded = %q", got)
	}
}

func TestDecodePlainPassThrough(t *testing.T) {
	in := "a,b\nčísla,2\n"
	got, err := io.ReadAll(pcsv.NewDecodingReader(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(string(got), in) {
		t.Fatalf("decoded = %q, want %q", got, in)
	}
}
