// Package extract implements the Extractor interface.
// It locates the first fenced code block tagged as a Mermaid diagram in a
// Markdown document and returns its trimmed contents.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mermshot/core"
)

// fenceRegex matches a line-initial ```mermaid fence up to the next ```.
// The body is non-greedy so only the first block is captured.
var fenceRegex = regexp.MustCompile("(?ms)^```mermaid[ \\t]*\\r?\\n(.*?)```")

// RegexpExtractor finds Mermaid blocks with a multi-line pattern match.
type RegexpExtractor struct{}

// New creates a RegexpExtractor, the default extractor.
func New() *RegexpExtractor {
	return &RegexpExtractor{}
}

// Extract returns the trimmed body of the first Mermaid block.
// A first block that is blank counts as not found.
func (e *RegexpExtractor) Extract(markdown string) (string, bool) {
	m := fenceRegex.FindStringSubmatch(markdown)
	if m == nil {
		return "", false
	}
	source := strings.TrimSpace(m[1])
	return source, source != ""
}

// Parsers lists the accepted names for ByName.
var Parsers = []string{"regexp", "goldmark"}

// ByName returns the extractor registered under name.
func ByName(name string) (core.Extractor, error) {
	switch name {
	case "", "regexp":
		return New(), nil
	case "goldmark":
		return NewGoldmark(), nil
	default:
		return nil, fmt.Errorf("unknown parser %q, must be one of %v", name, Parsers)
	}
}
