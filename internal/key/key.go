// Package key builds the string keys entities are indexed and sorted by.
package key

import (
	"fmt"
	"strconv"
	"strings"
)

// sep joins key parts. It sorts below every printable byte, so a shorter
// part always sorts before a longer one sharing its prefix.
const sep = "\x1f"

// Compose joins parts into one composite key.
func Compose(parts ...string) string {
	return strings.Join(parts, sep)
}

// Parts splits a composite key.
func Parts(k string) []string {
	return strings.Split(k, sep)
}

// YearOffset encodes a fiscal-year offset (0 = current, -1 = previous) as
// 100 - offset, zero padded. Ascending order of the encoded value puts the
// current year first and older years after it.
func YearOffset(offset int) string {
	return fmt.Sprintf("%03d", 100-offset)
}

// ParseYearOffset reverses YearOffset.
func ParseYearOffset(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year offset key %q: %w", s, err)
	}
	return 100 - n, nil
}

// Int pads n so that numeric parts compare correctly as strings.
func Int(n int) string {
	return fmt.Sprintf("%06d", n)
}

// Tag builds a namespaced tag like "dim:1".
func Tag(kind string, value any) string {
	return fmt.Sprintf("%s:%v", kind, value)
}
