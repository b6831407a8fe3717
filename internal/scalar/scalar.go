// Package scalar converts raw field strings into typed values, reporting
// every failure as a MalformedError.
//
// Numeric checks are loose: surrounding whitespace and a leading plus sign
// are accepted, and an integer may be written in any form that is
// numerically whole ("1.0").
package scalar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/sie/internal/textutil"
)

// ErrMalformed is the sentinel every MalformedError matches.
var ErrMalformed = errors.New("malformed value")

// MalformedError describes a field that does not have the expected shape.
type MalformedError struct {
	Field string
	Kind  string // "integer", "decimal", "date", "period"
	Value string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s in %s: %q", e.Kind, e.Field, e.Value)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

func normalize(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "+")
}

// Int parses an integer field.
func Int(field, raw string) (int, error) {
	d, err := decimal.NewFromString(normalize(raw))
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, &MalformedError{Field: field, Kind: "integer", Value: raw}
	}
	n := d.IntPart()
	if int64(int(n)) != n {
		return 0, &MalformedError{Field: field, Kind: "integer", Value: raw}
	}
	return int(n), nil
}

// OptionalInt parses an integer field that may be empty.
func OptionalInt(field, raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return Int(field, raw)
}

// Decimal parses an amount or quantity.
func Decimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(normalize(raw))
	if err != nil {
		return decimal.Zero, &MalformedError{Field: field, Kind: "decimal", Value: raw}
	}
	return d, nil
}

// OptionalDecimal parses a decimal field that may be empty.
func OptionalDecimal(field, raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := Decimal(field, raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// Date parses a YYYYMMDD date.
func Date(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if !textutil.DateLike(s) {
		return time.Time{}, &MalformedError{Field: field, Kind: "date", Value: raw}
	}
	d, _ := time.Parse(textutil.DateFormat, s)
	return d, nil
}

// OptionalDate parses a date that may be empty; empty yields the zero time.
func OptionalDate(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	return Date(field, raw)
}

// Period validates a YYYYMM period and returns it trimmed.
func Period(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) != 6 {
		return "", &MalformedError{Field: field, Kind: "period", Value: raw}
	}
	if _, err := time.Parse("200601", s); err != nil {
		return "", &MalformedError{Field: field, Kind: "period", Value: raw}
	}
	return s, nil
}

// FormatDate writes t as YYYYMMDD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(textutil.DateFormat)
}

// FormatAmount writes an amount with two decimals. Amounts carrying more
// precision are written in full rather than rounded.
func FormatAmount(d decimal.Decimal) string {
	if !d.Equal(d.Round(2)) {
		return d.String()
	}
	return d.StringFixed(2)
}

// FormatQuantity writes an optional quantity, or "" when absent.
func FormatQuantity(q decimal.NullDecimal) string {
	if !q.Valid {
		return ""
	}
	return q.Decimal.String()
}
