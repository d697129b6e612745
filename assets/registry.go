package assets

// Registry maps logical asset keys to loaded-resource handles. It is filled
// once at startup and read for the rest of the process. Duplicate keys are
// kept; Lookup returns the first registration.
type Registry[K comparable, H any] struct {
	entries []registryEntry[K, H]
}

type registryEntry[K comparable, H any] struct {
	key    K
	handle H
}

func NewRegistry[K comparable, H any]() *Registry[K, H] {
	return &Registry[K, H]{}
}

// Register appends a key/handle pair.
func (r *Registry[K, H]) Register(key K, handle H) {
	if r == nil {
		return
	}
	r.entries = append(r.entries, registryEntry[K, H]{key: key, handle: handle})
}

// Lookup scans for key. A miss means the asset has not been registered yet
// and is not an error.
func (r *Registry[K, H]) Lookup(key K) (H, bool) {
	var zero H
	if r == nil {
		return zero, false
	}
	for _, e := range r.entries {
		if e.key == key {
			return e.handle, true
		}
	}
	return zero, false
}

func (r *Registry[K, H]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Keys returns registered keys in registration order, duplicates included.
func (r *Registry[K, H]) Keys() []K {
	if r == nil {
		return nil
	}
	keys := make([]K, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.key)
	}
	return keys
}
