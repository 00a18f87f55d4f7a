package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/hasbyte1/go-underbar/value"
)

// Field resolves a named field on v.
//
// name is a dot-notation path (see [Get]). Records, that is string-keyed
// maps, are looked up through [Get]; for structs, and pointers to structs,
// each segment names an exported field. The second result is false when the
// field does not exist.
func Field(v any, name string) (any, bool) {
	if m, ok := value.AsMapping(v); ok {
		return Get(m, name)
	}
	return walk(v, name)
}

// compareScalars orders two dynamically typed sort keys. Missing keys (nil)
// sort before everything else. Numbers of any Go numeric kind compare
// numerically, strings lexically, booleans false before true and times
// chronologically. Any other pairing is an [ErrInvalidArgument].
func compareScalars(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}

	if c, ok := compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b)); ok {
		return c, nil
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	case bool:
		if y, ok := b.(bool); ok {
			return boolRank(x) - boolRank(y), nil
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot order %T against %T", ErrInvalidArgument, a, b)
}

// compareNumbers orders two numeric values. Integers are compared exactly,
// including signed against unsigned; only a float on either side makes the
// comparison go through float64.
func compareNumbers(a, b reflect.Value) (int, bool) {
	ka, kb := numericClass(a), numericClass(b)
	switch {
	case ka == notNumber || kb == notNumber:
		return 0, false
	case ka == signed && kb == signed:
		return cmp.Compare(a.Int(), b.Int()), true
	case ka == unsigned && kb == unsigned:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case ka == signed && kb == unsigned:
		if a.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.Int()), b.Uint()), true
	case ka == unsigned && kb == signed:
		if b.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(a.Uint(), uint64(b.Int())), true
	}
	return cmp.Compare(toFloat(a), toFloat(b)), true
}

type numberClass int

const (
	notNumber numberClass = iota
	signed
	unsigned
	float
)

func numericClass(rv reflect.Value) numberClass {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return notNumber
}

func toFloat(rv reflect.Value) float64 {
	switch numericClass(rv) {
	case signed:
		return float64(rv.Int())
	case unsigned:
		return float64(rv.Uint())
	}
	return rv.Float()
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
