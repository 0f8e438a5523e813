// Package render implements the Renderer interface.
// It writes the diagram page next to the destination, opens it in a
// headless browser, waits for Mermaid to produce the SVG and captures it.
// The browser and the intermediate HTML file are released on every exit
// path.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/output"
	"github.com/gaurav-prasanna/mermshot/core/page"
)

const (
	// DefaultTimeout bounds the wait for the rendered SVG.
	DefaultTimeout = 10 * time.Second

	svgSelector = "svg"
)

// Options configures a BrowserRenderer.
type Options struct {
	Page    page.Options
	Timeout time.Duration
	// KeepHTML leaves the intermediate page on disk for debugging.
	KeepHTML bool
}

// BrowserRenderer renders diagrams through a Launcher.
type BrowserRenderer struct {
	launcher core.Launcher
	writer   *output.Writer
	opts     Options
}

var _ core.Renderer = (*BrowserRenderer)(nil)

// New creates a BrowserRenderer.
func New(launcher core.Launcher, opts Options) *BrowserRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &BrowserRenderer{
		launcher: launcher,
		writer:   output.New(),
		opts:     opts,
	}
}

// Render converts source into an image at dest.
func (r *BrowserRenderer) Render(ctx context.Context, source, dest string) core.Result {
	if err := r.render(ctx, source, dest); err != nil {
		return core.ResultFromError(err)
	}
	return core.Result{Status: core.StatusRendered, Output: dest}
}

func (r *BrowserRenderer) render(ctx context.Context, source, dest string) (err error) {
	if ext := filepath.Ext(dest); !output.Supported(ext) {
		return fmt.Errorf("%w: %q (must be one of %v)", core.ErrUnsupportedFormat, ext, output.Formats)
	}

	doc, err := page.Build(source, r.opts.Page)
	if err != nil {
		return err
	}

	htmlPath, err := writePage(dest, doc)
	if err != nil {
		return err
	}
	if !r.opts.KeepHTML {
		defer func() {
			if rmErr := os.Remove(htmlPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
				err = fmt.Errorf("removing page %s: %w", htmlPath, rmErr)
			}
		}()
	}

	url, err := page.FileURL(htmlPath)
	if err != nil {
		return err
	}

	browser, err := r.launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing browser: %w", closeErr)
		}
	}()

	capture, err := browser.Capture(ctx, core.CaptureRequest{
		URL:      url,
		Selector: svgSelector,
		Timeout:  r.opts.Timeout,
	})
	if err != nil {
		return fmt.Errorf("capturing diagram: %w", err)
	}

	if err := r.writer.Write(dest, capture); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// writePage stores the page next to dest, normally as dest with an .html
// extension. An existing file at that path is never overwritten (it may be
// the document being rendered); a fresh <stem>-*.html name is used instead.
func writePage(dest, doc string) (string, error) {
	htmlPath := page.HTMLPath(dest)
	dir := filepath.Dir(htmlPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", dest, err)
	}

	f, err := os.OpenFile(htmlPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		stem := strings.TrimSuffix(filepath.Base(htmlPath), filepath.Ext(htmlPath))
		f, err = os.CreateTemp(dir, stem+"-*.html")
	}
	if err != nil {
		return "", fmt.Errorf("creating page for %s: %w", dest, err)
	}

	if _, err := f.WriteString(doc); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing page %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing page %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}
