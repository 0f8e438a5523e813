package page_test

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/mermshot/core/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		html, err := page.Build("graph TD; A-->B", page.Options{})
		require.NoError(t, err)
		assert.Contains(t, html, `<script src="`+page.DefaultMermaidURL+`"></script>`)
		assert.Contains(t, html, `theme: "default"`)
		assert.Contains(t, html, "startOnLoad: true")
		assert.Contains(t, html, "useMaxWidth: true")
		assert.Contains(t, html, "htmlLabels: true")
		assert.Contains(t, html, `<div class="mermaid">`)
	})

	t.Run("source is escaped inside the container", func(t *testing.T) {
		t.Parallel()
		html, err := page.Build("graph TD; A-->B</div><script>alert(1)</script>", page.Options{})
		require.NoError(t, err)
		assert.Contains(t, html, "graph TD; A--&gt;B&lt;/div&gt;")
		assert.Equal(t, 2, strings.Count(html, "<script"))
	})

	t.Run("custom theme and runtime url", func(t *testing.T) {
		t.Parallel()
		html, err := page.Build("graph TD; A-->B", page.Options{
			MermaidURL: "file:///opt/mermaid/mermaid.min.js",
			Theme:      "dark",
		})
		require.NoError(t, err)
		assert.Contains(t, html, `src="file:///opt/mermaid/mermaid.min.js"`)
		assert.Contains(t, html, `theme: "dark"`)
	})
}

func TestHTMLPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a.html", page.HTMLPath("a.png"))
	assert.Equal(t, "docs/architecture-electron.html", page.HTMLPath("docs/architecture-electron.png"))
	assert.Equal(t, "out/diagram.html", page.HTMLPath("out/diagram"))
}

func TestSwapExt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a.png", page.SwapExt("a.md", ".png"))
	assert.Equal(t, "dir.v2/a.pdf", page.SwapExt("dir.v2/a.md", ".pdf"))
}

func TestFileURL(t *testing.T) {
	t.Parallel()
	u, err := page.FileURL("/tmp/my diagrams/a.html")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/my%20diagrams/a.html", u)
}
