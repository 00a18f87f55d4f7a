package value

// Clone returns a deep copy of v's sequence and mapping structure. Sequences
// become []any and mappings map[string]any; scalars are returned as is.
// The result compares equal to v under [Equal].
func Clone(v any) any {
	switch KindOf(v) {
	case Sequence:
		items, _ := AsSequence(v)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = Clone(item)
		}
		return out
	case Mapping:
		m, _ := AsMapping(v)
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = Clone(item)
		}
		return out
	}
	return v
}
