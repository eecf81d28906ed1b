// Package builtin registers the catalogs shipped with the binary.
// Import it for side effects.
package builtin

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
	"github.com/vovakirdan/bingo/internal/registry"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

func init() {
	entries, err := fs.ReadDir(catalogFS, "catalogs")
	if err != nil {
		panic(fmt.Sprintf("builtin: reading embedded catalogs: %v", err))
	}

	for _, e := range entries {
		name := path.Join("catalogs", e.Name())
		id := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		registry.Register(id, func() (*catalog.Catalog, error) {
			return load(name)
		})
	}
}

func load(name string) (*catalog.Catalog, error) {
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c, err := catalog.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := c.Validate(card.MinTotalItems); err != nil {
		return nil, err
	}
	return c, nil
}
