package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/mermshot/discover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestInputs(t *testing.T) {
	t.Parallel()

	t.Run("recursive glob is sorted and files only", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "docs", "b.md"))
		touch(t, filepath.Join(dir, "docs", "nested", "a.md"))
		touch(t, filepath.Join(dir, "docs", "c.txt"))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "dir.md"), 0o755))

		got, err := discover.Inputs(nil, []string{filepath.Join(dir, "docs", "**", "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "docs", "b.md"),
			filepath.Join(dir, "docs", "nested", "a.md"),
		}, got)
	})

	t.Run("explicit inputs come first and duplicates are dropped", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		a := filepath.Join(dir, "a.md")
		b := filepath.Join(dir, "b.md")
		touch(t, a)
		touch(t, b)

		got, err := discover.Inputs([]string{b, b + string(filepath.Separator) + "."}, []string{filepath.Join(dir, "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{b, a}, got)
	})

	t.Run("urls are kept verbatim", func(t *testing.T) {
		t.Parallel()
		got, err := discover.Inputs([]string{"https://example.com/a.md", "https://example.com/a.md"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a.md"}, got)
	})

	t.Run("no matches is empty, not an error", func(t *testing.T) {
		t.Parallel()
		got, err := discover.Inputs(nil, []string{filepath.Join(t.TempDir(), "*.md")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("bad pattern", func(t *testing.T) {
		t.Parallel()
		_, err := discover.Inputs(nil, []string{"docs/[.md"})
		assert.Error(t, err)
	})
}

func TestQueue(t *testing.T) {
	t.Parallel()
	q := discover.NewQueue()
	q.Add("a.md")
	q.Add("./a.md")
	q.Add("b.md")
	q.Add("https://example.com/a.md")
	assert.Equal(t, []string{"a.md", "b.md", "https://example.com/a.md"}, q.All())
}
