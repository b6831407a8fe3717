// Package textutil holds the small string and date helpers shared by the
// record mappers.
package textutil

import (
	"strconv"
	"strings"
	"time"
)

// DateFormat is the SIE date layout.
const DateFormat = "20060102"

// ToNumericYear returns the leading four-digit year of s ("2025" or
// "20250101"), or 0 when s does not start with one.
func ToNumericYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 0 {
		return 0
	}
	return year
}

// DateLike reports whether s is a valid YYYYMMDD date.
func DateLike(s string) bool {
	if len(s) != len(DateFormat) {
		return false
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// TrimCollapse trims s and collapses every whitespace run to one space.
func TrimCollapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
