package conf

// Namespace places the keys of the given defaults under ns, so a
// package can declare its defaults relative to its own config key.
func Namespace(ns string, defaults ...map[string]any) DefaultConfig {
	namespaced := make(DefaultConfig)

	for _, m := range defaults {
		for key, val := range m {
			namespaced[ns+"."+key] = val
		}
	}

	return namespaced
}

// Merge returns a new DefaultConfig holding d and others. Later
// values win on duplicate keys.
func (d DefaultConfig) Merge(others ...DefaultConfig) DefaultConfig {
	merged := make(DefaultConfig, len(d))
	for key, val := range d {
		merged[key] = val
	}

	for _, other := range others {
		for key, val := range other {
			merged[key] = val
		}
	}

	return merged
}
