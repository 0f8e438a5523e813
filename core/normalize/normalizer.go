// Package normalize implements the Normalizer interface.
// It converts an HTML page into Markdown so HTML sources go through the
// same fenced-block extraction as Markdown sources.
package normalize

import (
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// containerSelectors are the elements Mermaid itself renders from when a
// page calls mermaid.initialize({startOnLoad: true}).
var containerSelectors = []string{"pre.mermaid", "div.mermaid"}

// noiseSelectors are removed before conversion. They never hold diagrams
// and only add bulk to the Markdown.
var noiseSelectors = []string{"script", "style", "noscript", "svg", "iframe"}

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize rewrites Mermaid containers into code blocks tagged
// language-mermaid and converts the page into Markdown.
func (n *MarkdownNormalizer) Normalize(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range containerSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			// already rendered: only the removed svg was inside
			if strings.TrimSpace(s.Text()) == "" {
				s.Remove()
				return
			}
			s.ReplaceWithHtml(codeBlockHTML(s.Text()))
		})
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

func codeBlockHTML(source string) string {
	return `<pre><code class="language-mermaid">` + html.EscapeString(strings.TrimSpace(source)) + "</code></pre>"
}
