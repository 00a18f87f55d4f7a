package collections

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/hasbyte1/go-underbar/value"
)

// Collection is a generic, immutable-by-default container holding either an
// ordered sequence of V or a string-keyed mapping to V.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.FromMap(map[string]int{"one": 1, "two": 2})
//	c, err := collections.Of(decoded) // []any or map[string]any from JSON
//
// # Iteration order
//
// Sequences are visited by index. Mappings are visited once per key in
// ascending key order, so repeated runs over the same mapping agree.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are package-level functions:
//
//	labels := collections.Map(c, func(n int, _ collections.Key) string {
//	    return strconv.Itoa(n * 2)
//	})
type Collection[V any] struct {
	items []V
	// names holds the mapping keys parallel to items; nil for sequences.
	names []string
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence from a variadic list of items (copied).
func New[V any](items ...V) *Collection[V] {
	return From(items)
}

// From creates a sequence from a slice (the slice is copied).
func From[V any](items []V) *Collection[V] {
	dst := make([]V, len(items))
	copy(dst, items)
	return &Collection[V]{items: dst}
}

// Empty creates an empty sequence of type V.
func Empty[V any]() *Collection[V] {
	return &Collection[V]{items: []V{}}
}

// FromMap creates a mapping from m (the map is copied). Keys are visited in
// ascending order.
func FromMap[V any](m map[string]V) *Collection[V] {
	names := slices.Sorted(maps.Keys(m))
	if names == nil {
		names = []string{}
	}
	items := make([]V, len(names))
	for i, name := range names {
		items[i] = m[name]
	}
	return &Collection[V]{items: items, names: names}
}

// Of wraps a dynamically typed value. Slices and arrays of any element type
// become sequences, string-keyed maps become mappings and a *Collection[any]
// is returned as is. Anything else is rejected with [ErrInvalidArgument].
func Of(v any) (*Collection[any], error) {
	if c, ok := v.(*Collection[any]); ok && c != nil {
		return c, nil
	}
	switch value.KindOf(v) {
	case value.Sequence:
		items, _ := value.AsSequence(v)
		return From(items), nil
	case value.Mapping:
		m, _ := value.AsMapping(v)
		return FromMap(m), nil
	}
	return nil, fmt.Errorf("%w: %T is not a collection", ErrInvalidArgument, v)
}

// MustOf is like [Of] but panics on invalid input. Intended for literals and
// tests.
func MustOf(v any) *Collection[any] {
	c, err := Of(v)
	if err != nil {
		panic(err)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the values in iteration order.
func (c *Collection[V]) All() []V {
	out := make([]V, len(c.items))
	copy(out, c.items)
	return out
}

// Values returns the values as a new sequence, dropping mapping keys.
func (c *Collection[V]) Values() *Collection[V] { return From(c.items) }

// Keys returns the key of every element in iteration order.
func (c *Collection[V]) Keys() []Key {
	keys := make([]Key, len(c.items))
	for i := range keys {
		keys[i] = c.key(i)
	}
	return keys
}

// Entries returns every element paired with its key, in iteration order.
func (c *Collection[V]) Entries() []Pair[Key, V] {
	out := make([]Pair[Key, V], len(c.items))
	for i, item := range c.items {
		out[i] = Pair[Key, V]{First: c.key(i), Second: item}
	}
	return out
}

// Count returns the number of elements.
func (c *Collection[V]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[V]) IsEmpty() bool { return len(c.items) == 0 }

// IsMapping reports whether the collection was built from a map.
func (c *Collection[V]) IsMapping() bool { return c.names != nil }

// Get returns the element at ordinal position index together with a
// presence flag. For mappings, positions follow iteration order.
func (c *Collection[V]) Get(index int) (V, bool) {
	var zero V
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// Lookup returns the element stored under name. It always reports false for
// sequences.
func (c *Collection[V]) Lookup(name string) (V, bool) {
	var zero V
	i, found := slices.BinarySearch(c.names, name)
	if !found {
		return zero, false
	}
	return c.items[i], true
}

func (c *Collection[V]) key(i int) Key {
	if c.names == nil {
		return Key{Index: i}
	}
	return Key{Index: i, Name: c.names[i], Named: true}
}

// ToJSON serialises a sequence as a JSON array and a mapping as a JSON
// object.
func (c *Collection[V]) ToJSON() ([]byte, error) {
	if c.names == nil {
		return json.Marshal(c.items)
	}
	m := make(map[string]V, len(c.items))
	for i, name := range c.names {
		m[name] = c.items[i]
	}
	return json.Marshal(m)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[V]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key, c) for every element in iteration order.
func (c *Collection[V]) Each(fn func(V, Key, *Collection[V])) {
	for i, item := range c.items {
		fn(item, c.key(i), c)
	}
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no
// element satisfies the predicate.
func (c *Collection[V]) First(fns ...func(V) bool) (V, bool) {
	var zero V
	for _, item := range c.items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
func (c *Collection[V]) Last(fns ...func(V) bool) (V, bool) {
	var zero V
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a sequence of the values for which fn(item, key) returns
// true. Filtering a mapping yields a sequence of its values.
func (c *Collection[V]) Filter(fn func(V, Key) bool) *Collection[V] {
	out := make([]V, 0, len(c.items))
	c.Each(func(item V, k Key, _ *Collection[V]) {
		if fn(item, k) {
			out = append(out, item)
		}
	})
	return &Collection[V]{items: out}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[V]) Reject(fn func(V, Key) bool) *Collection[V] {
	return c.Filter(func(item V, k Key) bool { return !fn(item, k) })
}

// Shuffle returns a sequence holding the values in a uniformly random order.
func (c *Collection[V]) Shuffle() *Collection[V] { return Shuffle(c) }
