package render

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/gaurav-prasanna/mermshot/core"
)

// RodLauncher starts headless Chrome/Chromium through go-rod.
// It never downloads a browser: if none is installed, Launch fails with
// core.ErrBrowserNotFound.
type RodLauncher struct {
	// Bin is the browser executable. Empty means look up an installed one.
	Bin string
}

var _ core.Launcher = (*RodLauncher)(nil)

// NewRodLauncher creates a RodLauncher for the given binary (may be empty).
func NewRodLauncher(bin string) *RodLauncher {
	return &RodLauncher{Bin: bin}
}

// BrowserPath resolves the executable Launch would use.
func (l *RodLauncher) BrowserPath() (string, error) {
	if l.Bin != "" {
		path, err := exec.LookPath(l.Bin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", core.ErrBrowserNotFound, err)
		}
		return path, nil
	}
	path, found := launcher.LookPath()
	if !found {
		return "", fmt.Errorf("%w: install Chrome or Chromium, or pass --browser", core.ErrBrowserNotFound)
	}
	return path, nil
}

// Launch starts a new headless browser and connects to it.
func (l *RodLauncher) Launch(ctx context.Context) (core.Browser, error) {
	bin, err := l.BrowserPath()
	if err != nil {
		return nil, err
	}

	ln := launcher.New().Context(ctx).Bin(bin).Headless(true)
	controlURL, err := ln.Launch()
	if err != nil {
		ln.Kill()
		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		ln.Kill()
		ln.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &rodBrowser{browser: browser, launcher: ln}, nil
}

type rodBrowser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func (b *rodBrowser) Capture(ctx context.Context, req core.CaptureRequest) (*core.Capture, error) {
	p, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer p.Close()

	if err := p.Navigate(req.URL); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", req.URL, err)
	}

	waiting := p.Timeout(req.Timeout)
	el, err := waiting.Element(req.Selector)
	waiting.CancelTimeout()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: no %q after %s", core.ErrElementNotFound, req.Selector, req.Timeout)
		}
		return nil, fmt.Errorf("waiting for %q: %w", req.Selector, err)
	}
	el = el.Context(ctx)

	shot, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return nil, fmt.Errorf("taking screenshot: %w", err)
	}

	markup, err := el.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading svg markup: %w", err)
	}

	return &core.Capture{PNG: shot, SVG: markup}, nil
}

func (b *rodBrowser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	b.launcher.Cleanup()
	return err
}
