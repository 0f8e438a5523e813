package render_test

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRodLauncherMissingBinary(t *testing.T) {
	t.Parallel()
	_, err := render.NewRodLauncher(filepath.Join(t.TempDir(), "no-such-chrome")).Launch(context.Background())
	assert.ErrorIs(t, err, core.ErrBrowserNotFound)
}

// TestRodEndToEnd drives a real browser and needs network access for the
// Mermaid runtime, so it only runs when MERMSHOT_E2E=1.
func TestRodEndToEnd(t *testing.T) {
	if os.Getenv("MERMSHOT_E2E") != "1" {
		t.Skip("set MERMSHOT_E2E=1 to run against a real browser")
	}

	launcher := render.NewRodLauncher(os.Getenv("MERMSHOT_BROWSER"))
	if _, err := launcher.BrowserPath(); err != nil {
		t.Skip(err)
	}

	dir := t.TempDir()
	dest := filepath.Join(dir, "architecture-electron.png")

	res := render.New(launcher, render.Options{}).Render(context.Background(), "graph TD; A-->B", dest)
	require.True(t, res.OK(), "%s: %v", res.Status, res.Err)

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)
	assert.NoFileExists(t, filepath.Join(dir, "architecture-electron.html"))
}
