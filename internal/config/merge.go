package config

// Merge combines layers left to right; later layers win. Two mappings
// merge key by key, recursively, with the earlier layer's keys first and
// newly introduced keys after them. Any other pair is replaced by a deep
// copy of the later value, so sequences are never concatenated. The
// inputs are not modified.
func Merge(layers ...Value) Value {
	var out Value
	for i, l := range layers {
		if i == 0 {
			out = l.Clone()
			continue
		}
		out = mergeTwo(out, l)
	}
	return out
}

func mergeTwo(a, b Value) Value {
	if a.Kind != KindMapping || b.Kind != KindMapping {
		return b.Clone()
	}
	m := a.Map.Clone()
	for _, k := range b.Map.keys {
		bv := b.Map.vals[k]
		if av, ok := m.Get(k); ok {
			m.Set(k, mergeTwo(av, bv))
		} else {
			m.Set(k, bv.Clone())
		}
	}
	return Mapping(m)
}
