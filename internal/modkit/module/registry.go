package module

import (
	"sort"
	"sync"
)

// process wide registry of port sets, filled during bootstrap in main
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set for a module name; nil port sets are ignored
func Register(name string, ports any) {
	if ports == nil {
		return
	}
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches and type asserts a port set for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Names lists registered module names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
