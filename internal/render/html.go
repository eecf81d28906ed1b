// Package render turns cards and catalogs into printable documents: festive
// HTML pages, PDFs printed from that HTML, and styled terminal text.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math/rand/v2"

	"github.com/vovakirdan/bingo/internal/card"
	"github.com/vovakirdan/bingo/internal/catalog"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	cardsTemplate = template.Must(template.ParseFS(templateFS, "templates/cards.html.tmpl", "templates/styles.css.tmpl"))
	introTemplate = template.Must(template.ParseFS(templateFS, "templates/intro.html.tmpl"))
)

var snowflakeSymbols = []string{"❄", "❅", "❆", "*"}

// HTMLOptions controls the festive document.
type HTMLOptions struct {
	IncludeKey bool
	// Snowflakes is the number of decorations per card page.
	Snowflakes int
	// Rand places the decorations. Nil disables them.
	Rand *rand.Rand
}

type snowflake struct {
	X, Y, Size int
	Symbol     string
}

type cardPage struct {
	Number     int
	Serial     string
	Cells      []string
	Snowflakes []snowflake
}

type keyPage struct {
	Count  int
	Groups []catalog.Group
}

type document struct {
	DocTitle string
	Title    string
	Subtitle string
	Footer   string
	Theme    catalog.Theme
	Cards    []cardPage
	Key      *keyPage
}

// CardsHTML writes one page per card, followed by the key page when
// requested.
func CardsHTML(w io.Writer, c *catalog.Catalog, cards []card.Card, opts HTMLOptions) error {
	doc := newDocument(c)
	doc.DocTitle = "Bingo Cards - " + c.Title

	for _, crd := range cards {
		labels, err := card.Labels(crd.Grid, c)
		if err != nil {
			return fmt.Errorf("render: card %d: %w", crd.Number, err)
		}
		page := cardPage{
			Number:     crd.Number,
			Serial:     crd.Serial,
			Cells:      make([]string, 0, card.Size*card.Size),
			Snowflakes: snowflakes(opts.Rand, opts.Snowflakes),
		}
		for _, row := range labels {
			page.Cells = append(page.Cells, row[:]...)
		}
		doc.Cards = append(doc.Cards, page)
	}

	if opts.IncludeKey {
		doc.Key = newKeyPage(c)
	}
	return execute(w, doc)
}

// KeyHTML writes a document holding only the key page.
func KeyHTML(w io.Writer, c *catalog.Catalog) error {
	doc := newDocument(c)
	doc.DocTitle = "Bingo Key - " + c.Title
	doc.Key = newKeyPage(c)
	return execute(w, doc)
}

func newDocument(c *catalog.Catalog) document {
	footer := c.Footer
	if footer == "" {
		footer = "Mark each event as you see it!"
	}
	return document{
		Title:    c.Title,
		Subtitle: c.Subtitle,
		Footer:   footer,
		Theme:    c.Theme,
	}
}

func newKeyPage(c *catalog.Catalog) *keyPage {
	return &keyPage{Count: c.Size(), Groups: c.Groups()}
}

func execute(w io.Writer, doc document) error {
	if err := cardsTemplate.ExecuteTemplate(w, "cards.html.tmpl", doc); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}

// snowflakes scatters n decorations with positions in [5, 95] percent and
// sizes in [15, 30] px.
func snowflakes(rng *rand.Rand, n int) []snowflake {
	if rng == nil || n <= 0 {
		return nil
	}
	out := make([]snowflake, n)
	for i := range out {
		out[i] = snowflake{
			X:      5 + rng.IntN(91),
			Y:      5 + rng.IntN(91),
			Size:   15 + rng.IntN(16),
			Symbol: snowflakeSymbols[rng.IntN(len(snowflakeSymbols))],
		}
	}
	return out
}
