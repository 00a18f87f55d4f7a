package arr

import "reflect"

// Same reports whether a and b are the same element.
//
// It is a == b wherever == is safe. Interface values holding slices, maps or
// functions cannot be compared with ==; such values are the same only when
// they are the same reference: a slice with the same backing array and
// length, or the same map or function. Structs and arrays holding such
// values are compared member by member under the same rule.
func Same[T comparable](a, b T) bool {
	if plainComparable(reflect.TypeFor[T]()) || (hashable(a) && hashable(b)) {
		return a == b
	}
	return sameRef(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
}

// hashable reports whether v can be compared with == or used as a map key
// without panicking.
func hashable[T any](v T) bool {
	dyn := any(v)
	return dyn == nil || reflect.ValueOf(dyn).Comparable()
}

// plainComparable reports whether == on t can never panic, i.e. t is
// comparable and holds no interface values.
func plainComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return plainComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plainComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return t.Comparable()
}

func sameRef(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Map, reflect.Func:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		return sameRef(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameRef(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameRef(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return a.Equal(b)
}
