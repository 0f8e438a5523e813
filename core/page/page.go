// Package page builds the standalone HTML document that the browser loads
// to turn Mermaid source into an SVG.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultMermaidURL is the CDN build of the Mermaid runtime.
const DefaultMermaidURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// DefaultTheme is Mermaid's built-in default theme.
const DefaultTheme = "default"

// Options controls the generated page.
type Options struct {
	MermaidURL string
	Theme      string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <script src="{{.MermaidURL}}"></script>
    <style>
        body {
            margin: 0;
            padding: 20px;
            background: white;
        }
        .mermaid {
            background: white;
        }
    </style>
</head>
<body>
    <div class="mermaid">
{{.Source}}
    </div>
    <script>
        mermaid.initialize({
            startOnLoad: true,
            theme: {{.Theme}},
            flowchart: {
                useMaxWidth: true,
                htmlLabels: true
            }
        });
    </script>
</body>
</html>
`))

// Build renders the page for the given diagram source.
// The source is HTML-escaped; Mermaid decodes entities before parsing.
func Build(source string, opts Options) (string, error) {
	if opts.MermaidURL == "" {
		opts.MermaidURL = DefaultMermaidURL
	}
	if opts.Theme == "" {
		opts.Theme = DefaultTheme
	}

	var buf bytes.Buffer
	// The runtime URL comes from the operator, so file:// builds are allowed.
	err := pageTemplate.Execute(&buf, struct {
		MermaidURL template.URL
		Theme      string
		Source     string
	}{template.URL(opts.MermaidURL), opts.Theme, source})
	if err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}

// HTMLPath swaps the extension of an image path for ".html".
// Example: docs/a.png → docs/a.html
func HTMLPath(imagePath string) string {
	return SwapExt(imagePath, ".html")
}

// SwapExt replaces the extension of path (if any) with ext.
func SwapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// FileURL returns the file:// URL for path, made absolute first.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // windows drive letter
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}
