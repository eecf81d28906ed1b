package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/bingo/internal/config"
	"github.com/vovakirdan/bingo/internal/render"
)

// emitter writes documents in one output format. PDFs are printed from the
// HTML rendition through a shared browser.
type emitter struct {
	ctx     context.Context
	format  string
	printer *render.PDFPrinter
}

func newEmitter(ctx context.Context, format string) (*emitter, error) {
	if !config.ValidFormat(format) {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, config.Formats)
	}

	e := &emitter{ctx: ctx, format: format}
	if format == "pdf" {
		e.printer = render.NewPDFPrinter(render.PDFOptions{
			ChromeBin:   cfg.Render.ChromeBin,
			Headless:    cfg.Render.Headless,
			PaperWidth:  cfg.Render.PaperWidth,
			PaperHeight: cfg.Render.PaperHeight,
			Timeout:     time.Duration(cfg.Render.TimeoutSec) * time.Second,
		}, logger)
	}
	return e, nil
}

// ext returns the file extension for the format.
func (e *emitter) ext() string {
	if e.format == "text" {
		return ".txt"
	}
	return "." + e.format
}

// emit writes one document to path. html renders the HTML form and text
// the plain form.
func (e *emitter) emit(path string, html func(w io.Writer) error, text func() (string, error)) error {
	err := createFile(path, func(w io.Writer) error {
		switch e.format {
		case "text":
			s, err := text()
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, s)
			return err
		case "pdf":
			var buf bytes.Buffer
			if err := html(&buf); err != nil {
				return err
			}
			return e.printer.Print(e.ctx, buf.String(), w)
		default:
			return html(w)
		}
	})
	if err != nil {
		return err
	}
	logger.Info("Wrote file", "path", path)
	return nil
}

func (e *emitter) close() {
	if e.printer == nil {
		return
	}
	if err := e.printer.Close(); err != nil {
		logger.Warn("Closing browser", "err", err)
	}
}
