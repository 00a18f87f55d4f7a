// Package arr provides standalone, generic helpers for Go slices and
// string-keyed maps: iteration, transformation, filtering, reduction,
// set-like operations and object merging.
//
// # Slice helpers
//
// All slice helpers operate on plain []T values and never modify their
// input; every transformation returns a new slice:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := arr.Pluck(users, func(u User) string { return u.Name })
//	sum   := arr.Reduce([]int{1, 2, 3}, func(acc, n int) int { return acc + n }, 0)
//
// Reduction without an initial accumulator seeds with the first element and
// reports misuse instead of guessing:
//
//	arr.ReduceFirst([]int{5}, func(a, b int) int { return a + b*b }) // 5, nil
//	arr.ReduceFirst([]int{}, ...)                                    // 0, ErrEmptyReduce
//
// # Set operations
//
// [Uniq], [Contains], [Intersection] and [Difference] use exact equality
// (see [Same]) and always preserve the order of their first argument. Slices
// and maps held in []any elements compare by reference.
//
// # Named fields and methods
//
// Helpers that take a field or method name ([PluckKey], [SortByKey],
// [InvokeMethod]) resolve it at run time: dot-notation paths for
// map[string]any records, exported fields for structs and the method set for
// method calls. [Get] walks such a path on its own. Resolution failures are reported through [ErrInvalidArgument]
// and [ErrMissingMethod].
//
// # Object helpers
//
// [Extend] and [Defaults] merge maps into a target in argument order:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	arr.Defaults(m, map[string]any{"role": "admin"})
//	arr.Get(m, "user.name") // "Alice", true
package arr
