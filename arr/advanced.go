package arr

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/hasbyte1/go-underbar/random"
	"github.com/hasbyte1/go-underbar/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly shuffled copy of items using the package-wide
// generator from [random.Default]. items is not modified.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(items, random.Default())
}

// ShuffleWith is [Shuffle] with an explicit generator, e.g. one built on
// [random.NewSeededSource] for reproducible output.
func ShuffleWith[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	// Each step draws uniformly from the elements not yet placed.
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items sorted ascending by key. The sort is stable:
// each element is inserted immediately before the first already-placed
// element whose key is strictly greater, so equal keys keep input order.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	out := make([]T, 0, len(items))
	keys := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		at := sort.Search(len(keys), func(i int) bool { return cmp.Less(k, keys[i]) })
		out = slices.Insert(out, at, item)
		keys = slices.Insert(keys, at, k)
	}
	return out
}

// SortByKey is [SortBy] with the key read from the named field of each
// element (see [Field]). Elements missing the field sort first. Keys that
// cannot be ordered against each other return [ErrInvalidArgument].
func SortByKey[T any](items []T, key string) ([]T, error) {
	out := make([]T, 0, len(items))
	keys := make([]any, 0, len(items))
	for _, item := range items {
		k, _ := Field(item, key)
		var cmpErr error
		at := sort.Search(len(keys), func(i int) bool {
			c, err := compareScalars(k, keys[i])
			if err != nil && cmpErr == nil {
				cmpErr = err
			}
			return c < 0
		})
		if cmpErr != nil {
			return nil, fmt.Errorf("sort by %q: %w", key, cmpErr)
		}
		out = slices.Insert(out, at, item)
		keys = slices.Insert(keys, at, k)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Maybe is a value that may be missing. [Zip] uses it to mark positions past
// the end of a shorter input.
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] { return Maybe[T]{Value: v, Valid: true} }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.Value, m.Valid }

// String returns the value formatted with %v, or "<missing>".
func (m Maybe[T]) String() string {
	if !m.Valid {
		return "<missing>"
	}
	return fmt.Sprintf("%v", m.Value)
}

// Zip groups the elements at each index across seqs into tuples. Every tuple
// has len(seqs) entries and there are as many tuples as the longest input
// has elements; positions past the end of a shorter input are missing.
//
//	Zip([]any{"a", "b"}, []any{1})
//	// → [[a 1] [b <missing>]]
func Zip[T any](seqs ...[]T) [][]Maybe[T] {
	longest := Reduce(seqs, func(n int, seq []T) int { return max(n, len(seq)) }, 0)
	out := make([][]Maybe[T], longest)
	for i := range out {
		out[i] = make([]Maybe[T], len(seqs))
	}
	for j, seq := range seqs {
		for i, item := range seq {
			out[i][j] = Just(item)
		}
	}
	return out
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// ZipPair pairs elements of a and b at the same index, stopping at the
// shorter input. Use [Zip] when missing positions must be kept.
func ZipPair[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Flatten recursively flattens nested slices and arrays of any element type
// into one []any, depth-first and left to right. Non-sequence values pass
// through unchanged; a non-sequence argument yields a one-element result.
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		seq, ok := value.AsSequence(v)
		if !ok {
			out = append(out, v)
			return
		}
		for _, elem := range seq {
			flatten(elem)
		}
	}
	flatten(items)
	return out
}
