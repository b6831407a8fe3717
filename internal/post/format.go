package post

import "strings"

// Field is one value to be written. Bare fields are written verbatim, which
// is how object lists like {1 "100"} are emitted.
type Field struct {
	Value string
	Bare  bool
}

// Quoted returns a field written inside double quotes.
func Quoted(v string) Field { return Field{Value: v} }

// Bare returns a field written as is.
func Bare(v string) Field { return Field{Value: v, Bare: true} }

// Strings quotes every value.
func Strings(values ...string) []Field {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Quoted(v)
	}
	return fields
}

// Format renders label followed by the quoted values.
func Format(label string, values ...string) string {
	return FormatFields(label, Strings(values...))
}

// FormatFields renders label followed by fields separated by single spaces.
// Quotes inside values are escaped as \". Trailing empty fields are dropped;
// empty fields followed by a non-empty one are kept.
func FormatFields(label string, fields []Field) string {
	var b strings.Builder
	b.WriteString(label)
	for i, f := range fields {
		if label != "" || i > 0 {
			b.WriteByte(' ')
		}
		if f.Bare {
			b.WriteString(f.Value)
			continue
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f.Value, `"`, `\"`))
		b.WriteByte('"')
	}
	return trimTrailingEmpty(b.String())
}

// trimTrailingEmpty removes trailing ` ""` runs unless the run closes a
// field ending in an escaped quote.
func trimTrailingEmpty(s string) string {
	for strings.HasSuffix(s, ` ""`) && !strings.HasSuffix(s, `\" ""`) {
		s = s[:len(s)-3]
	}
	return s
}
