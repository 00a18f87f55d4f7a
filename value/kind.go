package value

import (
	"reflect"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// Kind is the variant tag of a value.
type Kind int

const (
	Invalid Kind = iota
	Scalar
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// KindOf classifies v. A nil interface is a [Scalar].
func KindOf(v any) Kind {
	if v == nil {
		return Scalar
	}
	if typeutil.IsArray(v) {
		return Sequence
	}
	if typeutil.IsMap(v) && stringKeyed(reflect.ValueOf(v)) {
		return Mapping
	}
	return Scalar
}

// AsSequence returns the elements of a slice or array as a []any.
// The second result is false when v is not a sequence.
func AsSequence(v any) ([]any, bool) {
	if KindOf(v) != Sequence {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	return sliceutil.Sliceify(v), true
}

// AsMapping returns a string-keyed map as a map[string]any.
// The second result is false when v is not a mapping.
func AsMapping(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if KindOf(v) != Mapping {
		return nil, false
	}
	rv := indirect(reflect.ValueOf(v))
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func stringKeyed(rv reflect.Value) bool {
	rv = indirect(rv)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}
