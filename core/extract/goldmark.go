package extract

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// GoldmarkExtractor parses the document as CommonMark and picks the first
// fenced code block whose info string names the mermaid language.
// Unlike the regexp extractor it honours ~~~ fences and ignores
// "```mermaid" lines that sit inside another code block.
type GoldmarkExtractor struct{}

// NewGoldmark creates a GoldmarkExtractor.
func NewGoldmark() *GoldmarkExtractor {
	return &GoldmarkExtractor{}
}

// Extract returns the trimmed body of the first Mermaid block.
func (e *GoldmarkExtractor) Extract(markdown string) (string, bool) {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found *ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if strings.EqualFold(string(block.Language(source)), "mermaid") {
			found = block
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})
	if found == nil {
		return "", false
	}

	var buf bytes.Buffer
	lines := found.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	body := strings.TrimSpace(buf.String())
	return body, body != ""
}
