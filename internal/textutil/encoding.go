package textutil

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names the character set of a SIE file on disk.
type Encoding string

const (
	// CP437 is the IBM PC 8-bit set SIE declares as "#FORMAT PC8".
	CP437 Encoding = "cp437"
	UTF8  Encoding = "utf-8"
)

// ParseEncoding accepts the names used in config files and flags.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cp437", "pc8", "ibm437":
		return CP437, nil
	case "utf-8", "utf8":
		return UTF8, nil
	}
	return "", fmt.Errorf("unknown encoding %q", s)
}

// Reader decodes r into UTF-8.
func (e Encoding) Reader(r io.Reader) io.Reader {
	if e == CP437 {
		return transform.NewReader(r, charmap.CodePage437.NewDecoder())
	}
	return r
}

// Writer encodes UTF-8 written to it into e. The caller must Close it to
// flush buffered output; Close does not close w. Characters outside CP437
// are replaced.
func (e Encoding) Writer(w io.Writer) io.WriteCloser {
	if e == CP437 {
		return transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.CodePage437.NewEncoder()))
	}
	return nopCloser{w}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// DecodeCP437 converts CP437 bytes to a UTF-8 string.
func DecodeCP437(b []byte) (string, error) {
	out, err := charmap.CodePage437.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding cp437: %w", err)
	}
	return string(out), nil
}

// EncodeCP437 converts a UTF-8 string to CP437 bytes.
func EncodeCP437(s string) ([]byte, error) {
	out, err := charmap.CodePage437.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding cp437: %w", err)
	}
	return out, nil
}
