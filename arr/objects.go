package arr

// Extend copies every key of each source into target, in argument order, so
// later sources overwrite earlier ones. It returns target.
//
// A nil target is replaced by a new map, so callers should always use the
// return value:
//
//	cfg = arr.Extend(cfg, fileCfg, flagCfg)
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults fills in keys that are absent from target, in argument order.
// Presence is checked at the moment each key is assigned, so the first
// source to supply a missing key wins and existing keys are never
// overwritten. It returns target; a nil target is replaced by a new map.
func Defaults[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}
