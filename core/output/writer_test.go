package output_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("png is written verbatim", func(t *testing.T) {
		t.Parallel()
		data := testPNG(t, 8, 4)
		path := filepath.Join(t.TempDir(), "a.png")

		require.NoError(t, output.New().Write(path, &core.Capture{PNG: data}))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("existing file is overwritten", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a.png")
		require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

		data := testPNG(t, 2, 2)
		require.NoError(t, output.New().Write(path, &core.Capture{PNG: data}))
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out", "nested", "a.png")
		require.NoError(t, output.New().Write(path, &core.Capture{PNG: testPNG(t, 2, 2)}))
		assert.FileExists(t, path)
	})

	t.Run("pdf embeds the screenshot", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a.pdf")
		require.NoError(t, output.New().Write(path, &core.Capture{PNG: testPNG(t, 40, 20)}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(got, []byte("%PDF-")))
	})

	t.Run("svg gets a standalone document header", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a.svg")
		require.NoError(t, output.New().Write(path, &core.Capture{SVG: `<svg id="mermaid-1"><g></g></svg>`}))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(got), `<?xml version="1.0"`)
		assert.Contains(t, string(got), `<svg xmlns="http://www.w3.org/2000/svg" id="mermaid-1">`)
	})

	t.Run("unsupported extension writes nothing", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a.gif")
		err := output.New().Write(path, &core.Capture{PNG: testPNG(t, 2, 2)})
		assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
		assert.NoFileExists(t, path)
	})

	t.Run("empty screenshot is an error", func(t *testing.T) {
		t.Parallel()
		err := output.New().Write(filepath.Join(t.TempDir(), "a.png"), &core.Capture{})
		assert.Error(t, err)
	})
}

func TestSupported(t *testing.T) {
	t.Parallel()
	assert.True(t, output.Supported("png"))
	assert.True(t, output.Supported(".PDF"))
	assert.True(t, output.Supported("svg"))
	assert.False(t, output.Supported("jpeg"))
}
