package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads catalog files from a directory.
type Loader struct {
	Root     string
	MinItems int
}

// NewLoader creates a loader that requires at least minItems per catalog.
func NewLoader(root string, minItems int) *Loader {
	return &Loader{Root: root, MinItems: minItems}
}

// LoadAll recursively loads every catalog file under Root. Invalid files are
// returned in skipped rather than failing the whole scan. Catalogs are
// sorted by ID.
func (l *Loader) LoadAll() (catalogs []*Catalog, skipped map[string]error, err error) {
	skipped = make(map[string]error)

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		c, loadErr := l.LoadFile(path)
		if loadErr != nil {
			skipped[path] = loadErr
			return nil
		}
		catalogs = append(catalogs, c)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(catalogs, func(i, j int) bool {
		return catalogs[i].ID < catalogs[j].ID
	})
	return catalogs, skipped, nil
}

// LoadFile loads and validates a single catalog file. A file without an id
// takes its base name as id.
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if c.Title == "" {
			c.Title = TitleFromID(c.ID)
		}
	}
	if err := c.Validate(l.MinItems); err != nil {
		return nil, fmt.Errorf("validating file %s: %w", path, err)
	}
	return c, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
