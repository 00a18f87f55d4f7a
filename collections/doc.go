// Package collections provides a generic Collection type that holds either an
// ordered sequence or a string-keyed mapping, plus package-level functions
// that run the arr primitives over it.
//
// # Overview
//
// Iteration callbacks receive the element and its [Key]: the ordinal
// position, plus the map key for mappings. Mappings are iterated in ascending
// key order.
//
//	c := collections.FromMap(map[string]int{"b": 2, "a": 1})
//	c.Each(func(v int, k collections.Key, _ *collections.Collection[int]) {
//	    fmt.Println(k, v) // a 1, then b 2
//	})
//
// Dynamically typed input, such as JSON decoded into any, enters through
// [Of], which rejects anything that is neither a sequence nor a mapping with
// [ErrInvalidArgument].
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Results of [Filter], [Map] and the other builders are
// sequences even when the input is a mapping.
//
// # Named methods
//
// [InvokeMethod] resolves a name against each element's Go methods first and
// then against operations registered at run time with [RegisterMethod]:
//
//	collections.RegisterMethod("half", func(v any, _ ...any) (any, error) {
//	    return v.(float64) / 2, nil
//	})
//
//	halves, _ := collections.InvokeMethod(collections.New(2.0, 5.0), "half")
package collections
