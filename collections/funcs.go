package collections

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
	"github.com/hasbyte1/go-underbar/value"
)

// This file contains package-level generic functions over a Collection. Go
// generics do not allow methods to introduce their own type parameters, so
// operations that change the element type, or need a comparable one, are
// stand-alone functions. They compose with method chaining:
//
//	labels := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int, _ collections.Key) bool { return n%2 == 0 }),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) },
//	)
//
// Operations that build a new collection return a sequence, even when given
// a mapping.

// ─────────────────────────────────────────────────────────────────────────────
// Iteration primitives
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, key) for every element in iteration order.
func Each[V any](c *Collection[V], fn func(V, Key)) {
	c.Each(func(item V, k Key, _ *Collection[V]) { fn(item, k) })
}

// EachOf is [Each] for dynamically typed input; see [Of] for what counts as
// a collection. Anything else returns [ErrInvalidArgument] without calling
// fn.
func EachOf(v any, fn func(any, Key, *Collection[any])) error {
	c, err := Of(v)
	if err != nil {
		return err
	}
	c.Each(fn)
	return nil
}

// IndexOf returns the ordinal position of the first element equal to
// target, or -1.
func IndexOf[V comparable](c *Collection[V], target V) int {
	found := -1
	Each(c, func(item V, k Key) {
		if found < 0 && arr.Same(item, target) {
			found = k.Index
		}
	})
	return found
}

// Filter returns a sequence of the values for which fn returns true.
func Filter[V any](c *Collection[V], fn func(V, Key) bool) *Collection[V] {
	return c.Filter(fn)
}

// Reject returns a sequence of the values for which fn returns false.
func Reject[V any](c *Collection[V], fn func(V, Key) bool) *Collection[V] {
	return c.Reject(fn)
}

// Uniq returns a sequence of the values without duplicates, keeping first
// occurrences in order.
func Uniq[V comparable](c *Collection[V]) *Collection[V] {
	return &Collection[V]{items: arr.Uniq(c.items)}
}

// Map applies fn to every element and returns a sequence of the results.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ collections.Key) int { return n * 2 })
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	Each(c, func(item V, k Key) { out = append(out, fn(item, k)) })
	return &Collection[U]{items: out}
}

// Pluck extracts the named field from every element (see [arr.Field]).
// Elements without the field contribute nil.
//
//	names := collections.Pluck(users, "Name")
func Pluck[V any](c *Collection[V], name string) *Collection[any] {
	return Map(c, func(item V, _ Key) any {
		v, _ := arr.Field(item, name)
		return v
	})
}

// Reduce folds the collection into a single value, starting from initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int, _ collections.Key) int { return acc + n }, 0)
func Reduce[V, U any](c *Collection[V], fn func(U, V, Key) U, initial U) U {
	result := initial
	Each(c, func(item V, k Key) { result = fn(result, item, k) })
	return result
}

// ReduceFirst folds the collection using its first element as the initial
// accumulator; that element is never passed to fn. An empty collection
// returns an error matching both [ErrEmptyReduce] and [ErrEmptyCollection].
func ReduceFirst[V any](c *Collection[V], fn func(V, V, Key) V) (V, error) {
	var zero V
	if c.IsEmpty() {
		return zero, fmt.Errorf("%w: %w", ErrEmptyCollection, ErrEmptyReduce)
	}
	return Reduce(c, func(acc, item V, k Key) V {
		if k.Index == 0 {
			return acc
		}
		return fn(acc, item, k)
	}, c.items[0]), nil
}

// Contains reports whether target is one of the values.
func Contains[V comparable](c *Collection[V], target V) bool {
	return Reduce(c, func(found bool, item V, _ Key) bool {
		return found || arr.Same(item, target)
	}, false)
}

// Every reports whether pred holds for every value. A nil pred tests each
// value's truthiness (see [value.Truthy]).
func Every[V any](c *Collection[V], pred func(V) bool) bool {
	return arr.Every(c.items, pred)
}

// Some reports whether pred holds for at least one value. A nil pred tests
// each value's truthiness.
func Some[V any](c *Collection[V], pred func(V) bool) bool {
	return arr.Some(c.items, pred)
}

// ─────────────────────────────────────────────────────────────────────────────
// Advanced operations
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a sequence holding the values in a uniformly random order.
func Shuffle[V any](c *Collection[V]) *Collection[V] {
	return &Collection[V]{items: arr.Shuffle(c.items)}
}

// SortBy returns a sequence of the values stably sorted ascending by key.
func SortBy[V any, K cmp.Ordered](c *Collection[V], key func(V) K) *Collection[V] {
	return &Collection[V]{items: arr.SortBy(c.items, key)}
}

// SortByKey is [SortBy] with the key read from the named field of each
// value (see [arr.SortByKey]).
func SortByKey[V any](c *Collection[V], name string) (*Collection[V], error) {
	items, err := arr.SortByKey(c.items, name)
	if err != nil {
		return nil, err
	}
	return &Collection[V]{items: items}, nil
}

// Invoke calls fn with each value and args and returns a sequence of the
// results.
func Invoke[V, R any](c *Collection[V], fn func(V, ...any) R, args ...any) *Collection[R] {
	return &Collection[R]{items: arr.Invoke(c.items, fn, args...)}
}

// InvokeMethod calls the operation called name on each value with args.
// The value's own Go methods are tried first, then methods registered with
// [RegisterMethod]. If neither resolves the name, the error wraps
// [ErrMissingMethod] and names the element.
func InvokeMethod[V any](c *Collection[V], name string, args ...any) (*Collection[any], error) {
	out := make([]any, 0, len(c.items))
	for i, item := range c.items {
		res, err := callNamed(item, name, args)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", c.key(i), err)
		}
		out = append(out, res)
	}
	return &Collection[any]{items: out}, nil
}

// Zip groups the values at each position across cs into tuples; see
// [arr.Zip].
func Zip[V any](cs ...*Collection[V]) *Collection[[]arr.Maybe[V]] {
	seqs := make([][]V, len(cs))
	for i, c := range cs {
		seqs[i] = c.items
	}
	return &Collection[[]arr.Maybe[V]]{items: arr.Zip(seqs...)}
}

// Flatten recursively flattens nested sequences, including nested
// *Collection[any] values, into one sequence. Mappings and other values pass
// through unchanged.
func Flatten(c *Collection[any]) *Collection[any] {
	out := make([]any, 0, len(c.items))
	var flatten func(v any)
	flatten = func(v any) {
		if nested, ok := v.(*Collection[any]); ok && !nested.IsMapping() {
			for _, item := range nested.items {
				flatten(item)
			}
			return
		}
		seq, ok := value.AsSequence(v)
		if !ok {
			out = append(out, v)
			return
		}
		for _, item := range seq {
			flatten(item)
		}
	}
	for _, item := range c.items {
		flatten(item)
	}
	return &Collection[any]{items: out}
}

// Intersection returns the values of first found in every one of others.
func Intersection[V comparable](first *Collection[V], others ...*Collection[V]) *Collection[V] {
	return &Collection[V]{items: arr.Intersection(first.items, itemsOf(others)...)}
}

// Difference returns the values of first found in none of others.
func Difference[V comparable](first *Collection[V], others ...*Collection[V]) *Collection[V] {
	return &Collection[V]{items: arr.Difference(first.items, itemsOf(others)...)}
}

func itemsOf[V any](cs []*Collection[V]) [][]V {
	return arr.Pluck(cs, func(c *Collection[V]) []V { return c.items })
}
