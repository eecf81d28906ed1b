package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
	"github.com/vovakirdan/bingo/internal/registry"
)

// registerCatalogDir registers every valid catalog found under dir.
// Catalogs whose id is already taken are skipped.
func registerCatalogDir(dir string) error {
	if dir == "" {
		return nil
	}

	catalogs, skipped, err := catalog.NewLoader(dir, card.MinTotalItems).LoadAll()
	if err != nil {
		return fmt.Errorf("loading catalogs: %w", err)
	}
	for path, loadErr := range skipped {
		logger.Warn("Skipping catalog file", "path", path, "err", loadErr)
	}

	for _, c := range catalogs {
		if registry.Exists(c.ID) {
			logger.Warn("Catalog id already registered, skipping", "id", c.ID, "dir", dir)
			continue
		}
		loaded := c
		registry.Register(c.ID, func() (*catalog.Catalog, error) {
			return loaded, nil
		})
		logger.Debug("Registered catalog", "id", c.ID, "items", c.Size())
	}
	return nil
}

// resolveCatalog returns the catalog from file when set, otherwise the
// registered catalog with the given id.
func resolveCatalog(id, file string) (*catalog.Catalog, error) {
	if file != "" {
		c, err := catalog.NewLoader(filepath.Dir(file), card.MinTotalItems).LoadFile(file)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if id == "" {
		id = cfg.Generation.Catalog
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown catalog %q (run 'bingo catalogs' to see available catalogs)", id)
	}
	return registry.Create(id)
}

// resolveSeed returns the configured seed, picking and logging a time
// based one when unset so the run can be reproduced.
func resolveSeed() uint64 {
	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("Using seed", "seed", seed)
	return seed
}

// genFlags holds the generation flags shared by several commands.
type genFlags struct {
	game        string
	catalogFile string
	winAt       int
	maxAttempts int
}

func (f *genFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.game, "game", "g", "", "Catalog id (default from config)")
	cmd.Flags().StringVar(&f.catalogFile, "catalog-file", "", "Load the catalog from a YAML file instead")
	cmd.Flags().IntVarP(&f.winAt, "win-at", "w", 0, "Call on which every card gets its first bingo (default from config)")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 0, "Generate-and-verify attempts per card (default from config)")
}

// params resolves generation parameters for c from flags and config.
func (f *genFlags) params(cmd *cobra.Command, c *catalog.Catalog) card.GenParams {
	p := card.GenParams{
		WinAt:       cfg.Generation.WinAt,
		TotalItems:  c.Size(),
		MaxAttempts: cfg.Generation.MaxAttempts,
	}
	if cmd.Flags().Changed("win-at") {
		p.WinAt = f.winAt
	}
	if cmd.Flags().Changed("max-attempts") {
		p.MaxAttempts = f.maxAttempts
	}
	return p
}

// explain adds a hint to generation errors.
func explain(err error) error {
	var pre *card.PreconditionError
	var ex *card.ExhaustedError
	switch {
	case errors.As(err, &pre):
		return fmt.Errorf("cannot build cards with these settings: %w", err)
	case errors.As(err, &ex):
		return fmt.Errorf("%w (try more --max-attempts or a different --win-at; see 'bingo stats')", err)
	}
	return err
}

// createFile creates path and its parent directory, hands the file to
// write and closes it.
func createFile(path string, write func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("closing file %s: %w", path, closeErr)
		}
	}()

	return write(f)
}
