package value

import (
	"math"
	"reflect"

	"github.com/ghetzel/go-stockutil/typeutil"
)

// Truthy reports whether v counts as true when used as a condition.
//
// nil, false, numeric zero, NaN and "" are falsy. Sequences and mappings are
// truthy whenever they are non-nil, including when empty. Any other value is
// truthy unless it is its type's zero value.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	}

	switch KindOf(v) {
	case Sequence, Mapping:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.Pointer:
			return !rv.IsNil()
		}
		return true
	}
	return !typeutil.IsZero(v)
}
