package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bingo/internal/render"
)

var (
	introGame   string
	introFormat string
	introOutput string
	introTitle  string
)

var introCmd = &cobra.Command{
	Use:   "intro <file.md>",
	Short: "Render a markdown introduction",
	Long: `Render a markdown introduction for the host (rules, what to watch
for) as a themed HTML page or PDF, using the colors of a catalog.

The output defaults to the input path with the new extension.

Examples:
  bingo intro rules.md
  bingo intro rules.md --format pdf -g vintage_christmas_films
  bingo intro rules.md -o out/intro.html --title "Movie Night"`,
	Args: cobra.ExactArgs(1),
	RunE: runIntro,
}

func init() {
	introCmd.Flags().StringVarP(&introGame, "game", "g", "", "Catalog id whose theme is used (default from config)")
	introCmd.Flags().StringVar(&introFormat, "format", "html", "Output format: html, pdf")
	introCmd.Flags().StringVarP(&introOutput, "output", "o", "", "Output path")
	introCmd.Flags().StringVar(&introTitle, "title", "", "Document title (default: catalog title)")
}

func runIntro(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	c, err := resolveCatalog(introGame, "")
	if err != nil {
		return err
	}

	format := strings.ToLower(introFormat)
	if format == "text" {
		return fmt.Errorf("intro supports html and pdf only")
	}
	em, err := newEmitter(cmd.Context(), format)
	if err != nil {
		return err
	}
	defer em.close()

	out := introOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + em.ext()
	}
	title := introTitle
	if title == "" {
		title = c.Title
	}

	return em.emit(out,
		func(w io.Writer) error { return render.IntroHTML(w, src, title, c.Theme) },
		nil,
	)
}
