package backend

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	backends = make(map[string]Backend)
)

// Register makes b available under its lowercased name. Backend packages
// call it from init().
func Register(b Backend) error {
	key := strings.ToLower(b.Name())

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := backends[key]; ok {
		return fmt.Errorf("backend %q already registered by %T", key, prev)
	}
	backends[key] = b
	return nil
}

// MustRegister is Register for init() functions; it panics on a duplicate
func MustRegister(b Backend) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Get looks a backend up by name, ignoring case
func Get(name string) (Backend, error) {
	mu.RLock()
	b, ok := backends[strings.ToLower(name)]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return b, nil
}

// List returns the registered names, sorted
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// ForEach visits every backend in name order. fn runs without the
// registry lock held, so it may call Get or List.
func ForEach(fn func(name string, b Backend)) {
	mu.RLock()
	snapshot := maps.Clone(backends)
	mu.RUnlock()

	for _, name := range slices.Sorted(maps.Keys(snapshot)) {
		fn(name, snapshot[name])
	}
}
