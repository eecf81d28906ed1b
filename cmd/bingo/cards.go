package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
	"github.com/vovakirdan/bingo/internal/render"
)

var (
	cardsGen       genFlags
	flagNumCards   int
	flagOutputDir  string
	flagPrefix     string
	flagFormat     string
	flagSplit      bool
	flagIncludeKey bool
	flagNoKey      bool
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Generate printable bingo cards",
	Long: `Generate a batch of cards from a catalog. Every card gets its first
bingo on exactly the --win-at call, and never earlier.

By default all cards go into one document with the key as the last page.
With --split every card gets its own file (prefix_01, prefix_02, ...) and
the key is written to prefix_key.

Formats:
  html - Festive printable page (open in a browser and print)
  pdf  - Printed through headless Chrome
  text - Plain text grids

Examples:
  bingo cards
  bingo cards -g vintage_christmas_films -n 30 -w 18
  bingo cards --format pdf -o out -p party
  bingo cards --split --no-key --seed 7
  bingo cards --catalog-file ./office.yaml`,
	Args: cobra.NoArgs,
	RunE: runCards,
}

func init() {
	cardsGen.register(cardsCmd)
	cardsCmd.Flags().IntVarP(&flagNumCards, "num", "n", 0, "Number of cards (default from config)")
	cardsCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Output directory (default from config)")
	cardsCmd.Flags().StringVarP(&flagPrefix, "prefix", "p", "", "Output file name prefix (default from config)")
	cardsCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: html, pdf, text (default from config)")
	cardsCmd.Flags().BoolVar(&flagSplit, "split", false, "Write one file per card")
	cardsCmd.Flags().BoolVar(&flagIncludeKey, "key", true, "Include the key page")
	cardsCmd.Flags().BoolVar(&flagNoKey, "no-key", false, "Leave out the key page")
	cardsCmd.MarkFlagsMutuallyExclusive("key", "no-key")
}

// outputSettings resolves output flags against config.
type outputSettings struct {
	dir, prefix, format string
	split, key          bool
}

func resolveOutput(cmd *cobra.Command) outputSettings {
	out := outputSettings{
		dir:    cfg.Output.Dir,
		prefix: cfg.Output.Prefix,
		format: cfg.Output.Format,
		split:  cfg.Output.Split,
		key:    cfg.Output.Key,
	}
	if cmd.Flags().Changed("output-dir") {
		out.dir = flagOutputDir
	}
	if cmd.Flags().Changed("prefix") {
		out.prefix = flagPrefix
	}
	if cmd.Flags().Changed("format") {
		out.format = strings.ToLower(flagFormat)
	}
	if cmd.Flags().Changed("split") {
		out.split = flagSplit
	}
	if cmd.Flags().Changed("key") {
		out.key = flagIncludeKey
	}
	if flagNoKey {
		out.key = false
	}
	return out
}

func runCards(cmd *cobra.Command, args []string) error {
	c, err := resolveCatalog(cardsGen.game, cardsGen.catalogFile)
	if err != nil {
		return err
	}

	n := cfg.Generation.Cards
	if cmd.Flags().Changed("num") {
		n = flagNumCards
	}
	if n < 1 {
		return fmt.Errorf("number of cards must be at least 1, got %d", n)
	}

	out := resolveOutput(cmd)
	em, err := newEmitter(cmd.Context(), out.format)
	if err != nil {
		return err
	}
	defer em.close()

	p := cardsGen.params(cmd, c)
	seed := resolveSeed()
	cards, err := card.GenerateBatch(seed, p, n)
	if err != nil {
		return explain(err)
	}

	attempts := 0
	for _, crd := range cards {
		attempts += crd.Attempts
	}
	logger.Info("Generated cards", "catalog", c.ID, "count", len(cards), "win_at", p.WinAt, "attempts", attempts)

	opts := render.HTMLOptions{
		Snowflakes: cfg.Render.Snowflakes,
		Rand:       card.StreamRNG(seed, 0),
	}

	if !out.split {
		opts.IncludeKey = out.key
		path := filepath.Join(out.dir, out.prefix+em.ext())
		return em.emit(path,
			func(w io.Writer) error { return render.CardsHTML(w, c, cards, opts) },
			func() (string, error) { return plainCards(c, cards, out.key) },
		)
	}

	for _, crd := range cards {
		single := []card.Card{crd}
		path := filepath.Join(out.dir, fmt.Sprintf("%s_%02d%s", out.prefix, crd.Number, em.ext()))
		err := em.emit(path,
			func(w io.Writer) error { return render.CardsHTML(w, c, single, opts) },
			func() (string, error) { return plainCards(c, single, false) },
		)
		if err != nil {
			return err
		}
	}

	if out.key {
		path := filepath.Join(out.dir, out.prefix+"_key"+em.ext())
		return em.emit(path,
			func(w io.Writer) error { return render.KeyHTML(w, c) },
			func() (string, error) { return render.PlainKey(c), nil },
		)
	}
	return nil
}

// plainCards renders cards as text, separated by blank lines.
func plainCards(c *catalog.Catalog, cards []card.Card, withKey bool) (string, error) {
	var sb strings.Builder
	for i, crd := range cards {
		if i > 0 {
			sb.WriteString("\n")
		}
		s, err := render.PlainCard(c, crd)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	if withKey {
		sb.WriteString("\n")
		sb.WriteString(render.PlainKey(c))
	}
	return sb.String(), nil
}
