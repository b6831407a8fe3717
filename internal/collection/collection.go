// Package collection provides the keyed and tagged container that holds every
// ledger entity type.
package collection

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrDuplicateKey is returned when inserting an item whose key is present.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned when a key or tag has no items.
	ErrNotFound = errors.New("not found")
)

// KeyError reports the key or tag a lookup or insert failed on.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// Collection holds items of one type indexed by a primary key and grouped
// by zero or more tags. Keys and tags are derived once, on insert.
//
// A Collection is not safe for concurrent mutation. Concurrent reads are
// safe once it is no longer modified.
type Collection[T any] struct {
	keyOf  func(T) string
	tagsOf func(T) []string
	cmp    func(a, b T) int

	items map[string]T
	order []string // insertion order
	tags  map[string][]string
}

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithTags sets the tag derivation function.
func WithTags[T any](tagsOf func(T) []string) Option[T] {
	return func(c *Collection[T]) { c.tagsOf = tagsOf }
}

// WithCompare sets the default iteration order. Without it items are
// ordered by NaturalCompare of their keys.
func WithCompare[T any](cmp func(a, b T) int) Option[T] {
	return func(c *Collection[T]) { c.cmp = cmp }
}

// New creates an empty Collection keyed by keyOf.
func New[T any](keyOf func(T) string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		keyOf: keyOf,
		items: make(map[string]T),
		tags:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert adds item. It fails with ErrDuplicateKey if its key is present,
// leaving the collection unchanged.
func (c *Collection[T]) Insert(item T) error {
	key := c.keyOf(item)
	if _, ok := c.items[key]; ok {
		return &KeyError{Key: key, Err: ErrDuplicateKey}
	}
	c.items[key] = item
	c.order = append(c.order, key)
	if c.tagsOf != nil {
		for _, tag := range c.tagsOf(item) {
			c.tags[tag] = append(c.tags[tag], key)
		}
	}
	return nil
}

// Remove deletes the item stored under key and returns it.
func (c *Collection[T]) Remove(key string) (T, error) {
	item, ok := c.items[key]
	if !ok {
		var zero T
		return zero, &KeyError{Key: key, Err: ErrNotFound}
	}
	delete(c.items, key)
	c.order = slices.DeleteFunc(c.order, func(k string) bool { return k == key })
	if c.tagsOf != nil {
		for _, tag := range c.tagsOf(item) {
			keys := slices.DeleteFunc(c.tags[tag], func(k string) bool { return k == key })
			if len(keys) == 0 {
				delete(c.tags, tag)
				continue
			}
			c.tags[tag] = keys
		}
	}
	return item, nil
}

// Replace swaps the item stored under the key of item. Tags are recomputed.
func (c *Collection[T]) Replace(item T) error {
	if _, err := c.Remove(c.keyOf(item)); err != nil {
		return err
	}
	return c.Insert(item)
}

// Get returns the item stored under key.
func (c *Collection[T]) Get(key string) (T, error) {
	item, ok := c.items[key]
	if !ok {
		var zero T
		return zero, &KeyError{Key: key, Err: ErrNotFound}
	}
	return item, nil
}

// Exists reports whether key is present.
func (c *Collection[T]) Exists(key string) bool {
	_, ok := c.items[key]
	return ok
}

// KeyOf returns the primary key the collection derives for item.
func (c *Collection[T]) KeyOf(item T) string {
	return c.keyOf(item)
}

// HasTag reports whether at least one item carries tag.
func (c *Collection[T]) HasTag(tag string) bool {
	return len(c.tags[tag]) > 0
}

// ByTag returns the items carrying tag in insertion order. An unknown tag
// yields an empty slice.
func (c *Collection[T]) ByTag(tag string) []T {
	keys := c.tags[tag]
	items := make([]T, 0, len(keys))
	for _, k := range keys {
		items = append(items, c.items[k])
	}
	return items
}

// RequireTag is ByTag for callers expecting at least one match. It fails
// with ErrNotFound otherwise.
func (c *Collection[T]) RequireTag(tag string) ([]T, error) {
	items := c.ByTag(tag)
	if len(items) == 0 {
		return nil, &KeyError{Key: tag, Err: ErrNotFound}
	}
	return items, nil
}

// Len returns the number of items.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns the items in default order, or ordered by cmp if given.
func (c *Collection[T]) Items(cmp ...func(a, b T) int) []T {
	var keys []string
	if len(cmp) > 0 && cmp[0] != nil {
		keys = c.sortedBy(cmp[0])
	} else {
		keys = c.defaultOrder()
	}
	items := make([]T, len(keys))
	for i, k := range keys {
		items[i] = c.items[k]
	}
	return items
}

// All iterates over the items in default order.
func (c *Collection[T]) All() iter.Seq2[int, T] {
	keys := c.defaultOrder()
	return func(yield func(int, T) bool) {
		for i, k := range keys {
			if !yield(i, c.items[k]) {
				return
			}
		}
	}
}

// Cursor returns a cursor over a snapshot of the default order.
func (c *Collection[T]) Cursor() *Cursor[T] {
	return newCursor(c, c.defaultOrder())
}

func (c *Collection[T]) defaultOrder() []string {
	if c.cmp != nil {
		return c.sortedBy(c.cmp)
	}
	keys := slices.Clone(c.order)
	slices.SortStableFunc(keys, NaturalCompare)
	return keys
}

func (c *Collection[T]) sortedBy(cmp func(a, b T) int) []string {
	keys := slices.Clone(c.order)
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp(c.items[a], c.items[b])
	})
	return keys
}
