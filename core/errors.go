package core

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoDiagram indicates the document has no fenced Mermaid block.
	ErrNoDiagram = errors.New("mermaid diagram not found")

	// ErrBrowserNotFound indicates no usable Chrome/Chromium binary.
	ErrBrowserNotFound = errors.New("headless browser not available")

	// ErrElementNotFound indicates the rendered SVG never appeared.
	ErrElementNotFound = errors.New("svg element not found")

	// ErrNotUTF8 indicates a source document is not valid UTF-8.
	ErrNotUTF8 = errors.New("document is not valid UTF-8")

	// ErrUnsupportedFormat indicates an output extension we cannot write.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
