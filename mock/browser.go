// Package mock provides test doubles for mermshot interfaces using function fields.
package mock

import (
	"context"

	"github.com/gaurav-prasanna/mermshot/core"
)

// Interface compliance checks.
var (
	_ core.Launcher = (*Launcher)(nil)
	_ core.Browser  = (*Browser)(nil)
	_ core.Renderer = (*Renderer)(nil)
)

// Launcher is a test double for core.Launcher.
// Set LaunchFn before calling Launch.
type Launcher struct {
	LaunchFn func(ctx context.Context) (core.Browser, error)
}

// Launch delegates to LaunchFn.
func (l *Launcher) Launch(ctx context.Context) (core.Browser, error) {
	return l.LaunchFn(ctx)
}

// Browser is a test double for core.Browser.
// CloseFn may be left nil; Closed counts calls to Close either way.
type Browser struct {
	CaptureFn func(ctx context.Context, req core.CaptureRequest) (*core.Capture, error)
	CloseFn   func() error
	Closed    int
}

// Capture delegates to CaptureFn.
func (b *Browser) Capture(ctx context.Context, req core.CaptureRequest) (*core.Capture, error) {
	return b.CaptureFn(ctx, req)
}

// Close records the call and delegates to CloseFn when set.
func (b *Browser) Close() error {
	b.Closed++
	if b.CloseFn == nil {
		return nil
	}
	return b.CloseFn()
}

// Renderer is a test double for core.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, source, dest string) core.Result
}

// Render delegates to RenderFn.
func (r *Renderer) Render(ctx context.Context, source, dest string) core.Result {
	return r.RenderFn(ctx, source, dest)
}
