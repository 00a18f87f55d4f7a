package value

import (
	"reflect"
	"strings"

	"github.com/ghetzel/go-stockutil/stringutil"
)

// Equality reports whether two values are considered the same.
type Equality func(a, b any) bool

// Equal reports whether a and b are structurally identical.
//
// Sequences must have the same length and pairwise-equal elements. Mappings
// must have identical key sets and equal values per key. Scalars must share a
// dynamic type and compare equal with == (or [reflect.DeepEqual] when the type
// is not comparable).
func Equal(a, b any) bool {
	return deepEqual(a, b, strictScalar)
}

// LooseEqual is like [Equal] but coerces scalars of different types before
// comparing them, so 1 and "1" are equal. Scalars of the same type are
// compared exactly: "yes" and "on" differ, as do "1" and "1.0". Across types,
// numbers, booleans and strings are compared as numbers (true is 1, a string
// is parsed, the empty string is 0) and string kinds as strings. Any other
// pairing is unequal. The recursion through sequences and mappings is
// unchanged: a scalar is never loosely equal to a sequence or mapping.
func LooseEqual(a, b any) bool {
	return deepEqual(a, b, looseScalar)
}

// EqualArgs compares two argument lists positionally using eq. Lists of
// different length are never equal.
func EqualArgs(eq Equality, a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func deepEqual(a, b any, scalar func(a, b any) bool) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case Sequence:
		sa, _ := AsSequence(a)
		sb, _ := AsSequence(b)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !deepEqual(sa[i], sb[i], scalar) {
				return false
			}
		}
		return true

	case Mapping:
		ma, _ := AsMapping(a)
		mb, _ := AsMapping(b)
		if len(ma) != len(mb) {
			return false
		}
		for k, va := range ma {
			vb, ok := mb[k]
			if !ok || !deepEqual(va, vb, scalar) {
				return false
			}
		}
		return true

	default:
		return scalar(a, b)
	}
}

func strictScalar(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func looseScalar(a, b any) bool {
	if a == nil || b == nil || reflect.TypeOf(a) == reflect.TypeOf(b) {
		return strictScalar(a, b)
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return ra.String() == rb.String()
	}
	if ia, ok := integer(ra); ok {
		if ib, ok := integer(rb); ok {
			return ia == ib
		}
	}
	fa, ok := number(ra)
	if !ok {
		return false
	}
	fb, ok := number(rb)
	return ok && fa == fb
}

// integer returns signed integer kinds, and unsigned ones that fit, as int64.
func integer(rv reflect.Value) (int64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= 1<<63-1 {
			return int64(u), true
		}
	}
	return 0, false
}

// number converts a numeric, boolean or string scalar to float64.
func number(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		f, err := stringutil.ConvertToFloat(strings.TrimSpace(rv.String()))
		return f, err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
