// Package value provides a small tagged-variant view over arbitrary Go values
// and the structural equality routines built on it.
//
// Every value is classified as one of three kinds:
//
//   - [Scalar]: anything that is not a sequence or a mapping (numbers,
//     strings, booleans, structs, pointers, nil).
//   - [Sequence]: any slice or array, regardless of element type.
//   - [Mapping]: any map keyed by strings, regardless of value type.
//
// [Equal] and [LooseEqual] recurse through sequences and mappings and only
// differ in how they compare scalars:
//
//	value.Equal([]any{1, []int{2}}, []any{1, []int{2}}) // true
//	value.Equal(1, "1")                                 // false
//	value.LooseEqual(1, "1")                            // true
//	value.LooseEqual("yes", "on")                       // false
//
// Mappings are equal only when their key sets are identical; a mapping whose
// keys are a subset of another's is never equal to it.
//
// [Shape] hashes the structural outline of a value (kinds, lengths and
// mapping keys, but never scalar contents). Values that compare equal under
// either equality always share a shape, which makes it usable as a bucket
// key in front of a linear equality scan.
package value
