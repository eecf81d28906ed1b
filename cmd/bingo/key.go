package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bingo/internal/render"
)

var (
	keyGame        string
	keyCatalogFile string
	keyFormat      string
	keyOutputDir   string
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Print the key for a catalog",
	Long: `Print every item of a catalog grouped by section, in calling order.

Text goes to standard output. HTML and PDF are written to
<output-dir>/<catalog>_key.<ext>.

Examples:
  bingo key
  bingo key -g vintage_christmas_films
  bingo key --format pdf -o out`,
	Args: cobra.NoArgs,
	RunE: runKey,
}

func init() {
	keyCmd.Flags().StringVarP(&keyGame, "game", "g", "", "Catalog id (default from config)")
	keyCmd.Flags().StringVar(&keyCatalogFile, "catalog-file", "", "Load the catalog from a YAML file instead")
	keyCmd.Flags().StringVar(&keyFormat, "format", "text", "Output format: html, pdf, text")
	keyCmd.Flags().StringVarP(&keyOutputDir, "output-dir", "o", "", "Output directory (default from config)")
}

func runKey(cmd *cobra.Command, args []string) error {
	c, err := resolveCatalog(keyGame, keyCatalogFile)
	if err != nil {
		return err
	}

	format := strings.ToLower(keyFormat)
	if format == "text" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(render.KeyText(c, render.NewTextTheme(c.Theme)))
		} else {
			fmt.Print(render.PlainKey(c))
		}
		return nil
	}

	em, err := newEmitter(cmd.Context(), format)
	if err != nil {
		return err
	}
	defer em.close()

	dir := cfg.Output.Dir
	if cmd.Flags().Changed("output-dir") {
		dir = keyOutputDir
	}
	return em.emit(filepath.Join(dir, c.ID+"_key"+em.ext()),
		func(w io.Writer) error { return render.KeyHTML(w, c) },
		func() (string, error) { return render.PlainKey(c), nil },
	)
}
