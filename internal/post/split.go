// Package post reads and writes single SIE posts: one line made of a label
// and an ordered list of fields.
package post

import "strings"

// Marker starts the label of a post.
const Marker = '#'

// sentinel stands in for an escaped quote while scanning. Control bytes are
// stripped before it is introduced, so it never collides with content.
const sentinel = '\x01'

// Split tokenizes one raw line into its label and fields.
//
// A line that does not start with Marker has no label and all of it is split
// into fields. Unterminated quotes or brackets stay open to the end of the
// line.
func Split(line string) (label string, fields []string) {
	content := strings.TrimLeft(prepare(line), " ")
	if len(content) > 0 && content[0] == Marker {
		i := strings.IndexByte(content, ' ')
		if i < 0 {
			return content, nil
		}
		label, content = content[:i], content[i+1:]
	}
	return label, scan(content)
}

// Fields splits unlabeled content, such as the inside of an object list.
func Fields(content string) []string {
	return scan(prepare(content))
}

func prepare(line string) string {
	stripped := strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, line)
	return strings.ReplaceAll(stripped, `\"`, string(sentinel))
}

func scan(s string) []string {
	var (
		fields    []string
		buf       strings.Builder
		inQuote   bool
		inBracket bool
		quoted    bool // current field opened with a quote
		bracketed bool // current field opened with a bracket
	)

	flush := func() {
		if buf.Len() > 0 {
			fields = append(fields, finish(buf.String(), quoted, bracketed))
		}
		buf.Reset()
		quoted, bracketed = false, false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			buf.WriteByte(c)
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == '}' {
				inBracket = false
				continue
			}
			buf.WriteByte(c)
		case c == '"':
			if buf.Len() == 0 {
				if j, ok := emptyUntil(s, i+1, '"'); ok {
					fields = append(fields, "")
					i = j
					continue
				}
				quoted = true
			}
			inQuote = true
			buf.WriteByte(c)
		case c == '{' || c == '}':
			if c == '{' && buf.Len() == 0 {
				if j, ok := emptyUntil(s, i+1, '}'); ok {
					fields = append(fields, "")
					i = j
					continue
				}
				bracketed = true
			}
			inBracket = true
		case c == ' ':
			flush()
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	return fields
}

// emptyUntil reports whether only spaces separate position from the next
// closing byte, and returns the index of that byte.
func emptyUntil(s string, from int, closing byte) (int, bool) {
	for j := from; j < len(s); j++ {
		switch s[j] {
		case ' ':
			continue
		case closing:
			return j, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// finish strips the quotes of a quoted field and restores escaped quotes.
// Bracketed content keeps them escaped since it is split again by Fields.
func finish(field string, quoted, bracketed bool) string {
	if quoted {
		field = strings.TrimPrefix(field, `"`)
		field = strings.TrimSuffix(field, `"`)
	}
	if bracketed {
		return strings.ReplaceAll(field, string(sentinel), `\"`)
	}
	return strings.ReplaceAll(field, string(sentinel), `"`)
}
