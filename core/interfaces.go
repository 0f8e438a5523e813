// Package core defines the pipeline interfaces for mermshot.
// Each stage of the pipeline is a clean, testable interface:
// load → (normalize) → extract → render → write.
package core

import (
	"context"
	"time"
)

// DocumentKind identifies the markup a source document is written in.
type DocumentKind int

const (
	KindMarkdown DocumentKind = iota
	KindHTML
)

// Document holds the text of a loaded source and where it came from.
type Document struct {
	Origin string
	Kind   DocumentKind
	Text   string
}

// Job is one input → output conversion.
type Job struct {
	Title  string `yaml:"title"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Capture is what a browser hands back for the rendered diagram element.
type Capture struct {
	PNG []byte // element-scoped screenshot
	SVG string // outer HTML of the element
}

// CaptureRequest describes a page to open and the element to capture.
type CaptureRequest struct {
	URL      string
	Selector string
	Timeout  time.Duration
}

// Loader reads a source document from a path or URL.
type Loader interface {
	Load(ctx context.Context, source string) (*Document, error)
}

// Normalizer converts an HTML document into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Extractor pulls the first Mermaid diagram out of a Markdown document.
// The returned source is trimmed; ok is false if the document has none.
type Extractor interface {
	Extract(markdown string) (source string, ok bool)
}

// Renderer turns Mermaid source into an image file at dest.
// Failures are reported through the Result, never as a panic.
type Renderer interface {
	Render(ctx context.Context, source, dest string) Result
}

// Launcher starts a fresh browser instance.
type Launcher interface {
	Launch(ctx context.Context) (Browser, error)
}

// Browser is a running browser instance.
type Browser interface {
	// Capture navigates to req.URL, waits for req.Selector for at most
	// req.Timeout and captures that element.
	Capture(ctx context.Context, req CaptureRequest) (*Capture, error)
	Close() error
}
