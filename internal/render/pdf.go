package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PDFOptions configures the headless browser used for printing.
type PDFOptions struct {
	ChromeBin   string // Empty lets the launcher find or download a browser
	Headless    bool
	PaperWidth  float64 // inches
	PaperHeight float64 // inches
	Timeout     time.Duration
}

// DefaultPDFOptions prints US letter pages headlessly.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Headless:    true,
		PaperWidth:  8.5,
		PaperHeight: 11,
		Timeout:     60 * time.Second,
	}
}

// PDFPrinter prints HTML documents to PDF through Chrome. The browser is
// launched on first use and reused until Close.
type PDFPrinter struct {
	opts   PDFOptions
	logger *log.Logger

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPDFPrinter creates a printer. No browser is started until Print.
func NewPDFPrinter(opts PDFOptions, logger *log.Logger) *PDFPrinter {
	if logger == nil {
		logger = log.Default()
	}
	return &PDFPrinter{opts: opts, logger: logger}
}

// start launches the browser. The connection outlives any single Print
// context, so it is made without one.
func (p *PDFPrinter) start() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		return p.browser, nil
	}

	l := launcher.New().Headless(p.opts.Headless)
	if p.opts.ChromeBin != "" {
		l = l.Bin(p.opts.ChromeBin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	p.logger.Debug("Browser started", "control_url", controlURL)
	p.launcher = l
	p.browser = browser
	return browser, nil
}

// Print renders html and writes the resulting PDF to w.
func (p *PDFPrinter) Print(ctx context.Context, html string, w io.Writer) error {
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	browser, err := p.start()
	if err != nil {
		return err
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	// Web fonts are loaded asynchronously after the load event.
	if _, err := page.Eval(`() => document.fonts.ready.then(() => true)`); err != nil {
		p.logger.Warn("Fonts not ready, printing with fallbacks", "err", err)
	}

	width, height := p.opts.PaperWidth, p.opts.PaperHeight
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PaperWidth:        &width,
		PaperHeight:       &height,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return fmt.Errorf("print pdf: %w", err)
	}

	n, err := io.Copy(w, stream)
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	p.logger.Debug("Printed PDF", "bytes", n)
	return nil
}

// Close shuts down the browser if one was started.
func (p *PDFPrinter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser == nil {
		return nil
	}
	err := p.browser.Close()
	p.launcher.Cleanup()
	p.browser = nil
	p.launcher = nil
	if err != nil {
		return fmt.Errorf("close chrome: %w", err)
	}
	return nil
}
