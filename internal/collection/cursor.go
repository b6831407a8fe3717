package collection

// Cursor walks a snapshot of a collection's order. Each cursor has its own
// position, so independent scans never disturb each other.
type Cursor[T any] struct {
	c    *Collection[T]
	keys []string
	pos  int
}

func newCursor[T any](c *Collection[T], keys []string) *Cursor[T] {
	return &Cursor[T]{c: c, keys: keys}
}

// Current returns the item under the cursor. It reports false at the end or
// when the item was removed after the snapshot was taken.
func (cur *Cursor[T]) Current() (T, bool) {
	var zero T
	if cur.AtEnd() {
		return zero, false
	}
	item, ok := cur.c.items[cur.keys[cur.pos]]
	if !ok {
		return zero, false
	}
	return item, true
}

// Key returns the key under the cursor, or "" at the end.
func (cur *Cursor[T]) Key() string {
	if cur.AtEnd() {
		return ""
	}
	return cur.keys[cur.pos]
}

// Pos returns the zero-based position of the cursor.
func (cur *Cursor[T]) Pos() int { return cur.pos }

// Next advances the cursor and reports whether it still points at an item.
func (cur *Cursor[T]) Next() bool {
	if cur.pos < len(cur.keys) {
		cur.pos++
	}
	return !cur.AtEnd()
}

// Rewind moves the cursor back to the first item.
func (cur *Cursor[T]) Rewind() { cur.pos = 0 }

// Seek moves the cursor to key. If key is not in the snapshot the cursor is
// left where it was and Seek returns false.
func (cur *Cursor[T]) Seek(key string) bool {
	for i, k := range cur.keys {
		if k == key {
			cur.pos = i
			return true
		}
	}
	return false
}

// AtEnd reports whether the cursor has passed the last item.
func (cur *Cursor[T]) AtEnd() bool { return cur.pos >= len(cur.keys) }
