// Package registry provides a global registry of catalog factories.
// Built-in catalogs register themselves in init() functions, so the CLI can
// discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bingo/internal/catalog"
)

// Info contains metadata about a registered catalog.
type Info struct {
	ID    string
	Title string
	Size  int
}

// Factory returns a fresh copy of a catalog.
type Factory func() (*catalog.Catalog, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a catalog factory to the registry.
// Panics if a catalog with the same ID is already registered or the factory
// fails, since both are programming errors in built-in data.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: catalog %q already registered", id))
	}

	c, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: catalog %q: %v", id, err))
	}

	factories[id] = f
	infos[id] = Info{ID: id, Title: c.Title, Size: c.Size()}
}

// List returns information about all registered catalogs, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a new catalog by its ID.
func Create(id string) (*catalog.Catalog, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown catalog %q", id)
	}
	return f()
}

// Exists checks if a catalog with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
