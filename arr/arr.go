package arr

import (
	"slices"

	"github.com/hasbyte1/go-underbar/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns v unchanged. It is the default transform wherever a
// helper needs one and none was supplied.
func Identity[T any](v T) T { return v }

// Each calls fn(item, index) for every element in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	for _, item := range items {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	return zero, false
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](items[i]) {
			return items[i], true
		}
	}
	return zero, false
}

// FirstN returns a copy of the first n elements. n is clamped to [0, len(items)].
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// LastN returns a copy of the last n elements. n is clamped to [0, len(items)].
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}

// IndexOf returns the index of the first element equal to target, or -1.
// Slices, maps and functions held in interface values match by reference.
func IndexOf[T comparable](items []T, target T) int {
	for i, item := range items {
		if Same(item, target) {
			return i
		}
	}
	return -1
}

// Contains reports whether target appears in items.
func Contains[T comparable](items []T, target T) bool {
	return Reduce(items, func(found bool, item T) bool {
		return found || Same(item, target)
	}, false)
}

// Every reports whether pred holds for every element. A nil pred tests each
// element's own truthiness (see [value.Truthy]). Empty input yields true.
func Every[T any](items []T, pred func(T) bool) bool {
	if pred == nil {
		pred = truthy[T]
	}
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element. A nil pred tests
// each element's own truthiness. Empty input yields false.
func Some[T any](items []T, pred func(T) bool) bool {
	if pred == nil {
		pred = truthy[T]
	}
	return !Every(items, func(item T) bool { return !pred(item) })
}

func truthy[T any](v T) bool { return value.Truthy(v) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce folds items into a single value, starting from initial.
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// ReduceFirst folds items using the first element as the initial
// accumulator; that element is never passed to fn. A single-element input
// is returned untouched. Empty input returns [ErrEmptyReduce].
func ReduceFirst[T any](items []T, fn func(T, T) T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return Reduce(items[1:], fn, items[0]), nil
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, func(item T, _ int) U { return fn(item) })
}

// PluckKey extracts the named field from each element (see [Field]).
// Elements without the field contribute nil.
func PluckKey[T any](items []T, key string) []any {
	return Pluck(items, func(item T) any {
		v, _ := Field(item, key)
		return v
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice without duplicates, keeping the first occurrence
// of each element in its original position. Slices, maps and functions held
// in interface values are duplicates only of the same reference.
func Uniq[T comparable](items []T) []T {
	return UniqBy(items, Identity[T])
}

// UniqBy is like [Uniq] but compares the keys extracted by fn.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	// keys that cannot be map keys, searched linearly
	var unhashable []K
	return Filter(items, func(item T, _ int) bool {
		k := fn(item)
		if !hashable(k) {
			if slices.ContainsFunc(unhashable, func(u K) bool { return Same(u, k) }) {
				return false
			}
			unhashable = append(unhashable, k)
			return true
		}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Intersection returns the elements of first that appear in every one of
// others, in first's order. Duplicates in first are kept.
func Intersection[T comparable](first []T, others ...[]T) []T {
	return Filter(first, func(item T, _ int) bool {
		return Every(others, func(other []T) bool { return Contains(other, item) })
	})
}

// Difference returns the elements of first that appear in none of others,
// in first's order.
func Difference[T comparable](first []T, others ...[]T) []T {
	return Reject(first, func(item T, _ int) bool {
		return Some(others, func(other []T) bool { return Contains(other, item) })
	})
}
