package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/vovakirdan/bingo/internal/catalog"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
)

// IntroHTML converts a markdown host introduction into a themed HTML
// document. Raw HTML in the source is not passed through.
func IntroHTML(w io.Writer, src []byte, title string, theme catalog.Theme) error {
	var body bytes.Buffer
	if err := markdown.Convert(src, &body); err != nil {
		return fmt.Errorf("render: convert markdown: %w", err)
	}

	if title == "" {
		title = "Introduction"
	}
	data := struct {
		DocTitle string
		Theme    catalog.Theme
		Body     template.HTML
	}{
		DocTitle: title,
		Theme:    theme,
		Body:     template.HTML(body.String()), // goldmark omits raw HTML by default
	}

	if err := introTemplate.ExecuteTemplate(w, "intro.html.tmpl", data); err != nil {
		return fmt.Errorf("render: execute template: %w", err)
	}
	return nil
}
