// Package favorites implements the ordered set of favorite entry keys.
package favorites

// Registry is an immutable ordered set of entry keys in insertion order.
// Every mutating operation returns a new Registry; the receiver is never changed.
type Registry struct {
	keys []string
}

// New creates a registry seeded with keys. Duplicates and blanks are dropped,
// first occurrence wins.
func New(keys ...string) Registry {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return Registry{keys: out}
}

// Toggle removes key when present, otherwise appends it.
// Toggling the same key twice restores membership; a key that was not last
// comes back at the end.
func (r Registry) Toggle(key string) Registry {
	if r.Contains(key) {
		return r.Remove(key)
	}
	return r.Add(key)
}

// Add appends key if absent. Blank keys are ignored.
func (r Registry) Add(key string) Registry {
	if key == "" || r.Contains(key) {
		return r
	}
	out := make([]string, len(r.keys), len(r.keys)+1)
	copy(out, r.keys)
	return Registry{keys: append(out, key)}
}

// Remove drops key if present, preserving the order of the rest.
func (r Registry) Remove(key string) Registry {
	idx := r.index(key)
	if idx < 0 {
		return r
	}
	out := make([]string, 0, len(r.keys)-1)
	out = append(out, r.keys[:idx]...)
	out = append(out, r.keys[idx+1:]...)
	return Registry{keys: out}
}

// Contains reports membership.
func (r Registry) Contains(key string) bool { return r.index(key) >= 0 }

// Keys returns the keys in display order.
func (r Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r Registry) Len() int { return len(r.keys) }

// Equal reports whether both registries hold the same keys in the same order.
func (r Registry) Equal(other Registry) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}
	for i := range r.keys {
		if r.keys[i] != other.keys[i] {
			return false
		}
	}
	return true
}

// SameKeys reports whether both registries hold the same keys, ignoring order.
func (r Registry) SameKeys(other Registry) bool {
	if len(r.keys) != len(other.keys) {
		return false
	}
	for _, k := range r.keys {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

func (r Registry) index(key string) int {
	for i, k := range r.keys {
		if k == key {
			return i
		}
	}
	return -1
}
