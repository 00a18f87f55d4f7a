package value

import (
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Shape returns a hash of the structural outline of v: its kind, the length
// of every sequence and the sorted key set of every mapping, recursively.
// Scalar contents never contribute, so values equal under [Equal] or
// [LooseEqual] always share a shape.
func Shape(v any) uint64 {
	d := xxhash.New()
	writeShape(d, v)
	return d.Sum64()
}

func writeShape(d *xxhash.Digest, v any) {
	switch KindOf(v) {
	case Sequence:
		items, _ := AsSequence(v)
		_, _ = d.WriteString("[" + strconv.Itoa(len(items)))
		for _, item := range items {
			writeShape(d, item)
		}
		_, _ = d.WriteString("]")

	case Mapping:
		m, _ := AsMapping(v)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		_, _ = d.WriteString("{")
		for _, k := range keys {
			_, _ = d.WriteString(strconv.Quote(k) + ":")
			writeShape(d, m[k])
		}
		_, _ = d.WriteString("}")

	default:
		_, _ = d.WriteString("s")
	}
}
