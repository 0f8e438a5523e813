package normalize_test

import (
	"testing"

	"github.com/gaurav-prasanna/mermshot/core/extract"
	"github.com/gaurav-prasanna/mermshot/core/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("mermaid div becomes a mermaid fence", func(t *testing.T) {
		t.Parallel()
		page := `<html><body><h1>Docs</h1><div class="mermaid">
graph TD; A--&gt;B
</div></body></html>`
		md, err := normalize.New().Normalize(page)
		require.NoError(t, err)
		assert.Contains(t, md, "```mermaid")

		src, ok := extract.New().Extract(md)
		require.True(t, ok)
		assert.Equal(t, "graph TD; A-->B", src)
	})

	t.Run("language-mermaid code block is kept", func(t *testing.T) {
		t.Parallel()
		page := `<html><body><pre><code class="language-mermaid">graph LR; X--&gt;Y</code></pre></body></html>`
		md, err := normalize.New().Normalize(page)
		require.NoError(t, err)

		src, ok := extract.New().Extract(md)
		require.True(t, ok)
		assert.Equal(t, "graph LR; X-->Y", src)
	})

	t.Run("page without diagram has no fence", func(t *testing.T) {
		t.Parallel()
		md, err := normalize.New().Normalize(`<html><body><p>hello</p><script>var a = 1;</script></body></html>`)
		require.NoError(t, err)
		assert.Contains(t, md, "hello")
		assert.NotContains(t, md, "var a")

		_, ok := extract.New().Extract(md)
		assert.False(t, ok)
	})

	t.Run("already rendered container is dropped", func(t *testing.T) {
		t.Parallel()
		page := `<html><body>
<div class="mermaid" data-processed="true"><svg><g><text>A</text></g></svg></div>
<div class="mermaid">graph LR; X--&gt;Y</div>
</body></html>`
		md, err := normalize.New().Normalize(page)
		require.NoError(t, err)

		src, ok := extract.New().Extract(md)
		require.True(t, ok)
		assert.Equal(t, "graph LR; X-->Y", src)
	})
}
