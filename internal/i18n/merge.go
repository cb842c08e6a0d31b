package i18n

// MergeTranslations deep-merges extension over base and returns a new map;
// neither input is mutated. Map values merge recursively; arrays and scalars
// in extension replace the base value wholesale (array elements are never
// merged pairwise).
func MergeTranslations(base, extension map[string]any) map[string]any {
	merged := cloneMap(base)
	for key, extVal := range extension {
		if extMap, ok := extVal.(map[string]any); ok {
			baseMap, _ := merged[key].(map[string]any)
			merged[key] = MergeTranslations(baseMap, extMap)
			continue
		}
		merged[key] = extVal
	}
	return merged
}

// cloneMap returns a deep copy of m; nested maps are copied, other values
// (strings, numbers, slices) are shared since translations treat them as
// immutable leaves.
func cloneMap(m map[string]any) map[string]any {
	clone := make(map[string]any, len(m))
	for key, val := range m {
		if nested, ok := val.(map[string]any); ok {
			clone[key] = cloneMap(nested)
			continue
		}
		clone[key] = val
	}
	return clone
}
