package arr

import (
	"reflect"
	"strings"

	"github.com/hasbyte1/go-underbar/value"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths
//
// A path is a dot-separated list of segments. Each segment selects a key of a
// string-keyed map or an exported field of a struct, so a path may cross from
// maps into structs and back:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": Address{City: "London"},
//	    },
//	}
//
//	Get(m, "user.address.City")  → "London", true
//	Get(m, "user.age")           → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Get looks up a dot-notation path in m. The second result reports whether
// every segment of the path was present; a present nil value yields
// (nil, true).
func Get(m map[string]any, path string) (any, bool) {
	return walk(m, path)
}

func walk(v any, path string) (any, bool) {
	current := v
	for seg := range strings.SplitSeq(path, ".") {
		next, ok := step(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step resolves a single path segment on v.
func step(v any, seg string) (any, bool) {
	if m, ok := value.AsMapping(v); ok {
		out, found := m[seg]
		return out, found
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := rv.Type().FieldByName(seg)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	return rv.FieldByIndex(sf.Index).Interface(), true
}
