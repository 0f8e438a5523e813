// Package fetch implements the Loader interface.
// Local paths are read from disk; http(s) URLs are fetched with an HTTP GET.
// HTML sources are tagged so the pipeline can normalize them first.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gaurav-prasanna/mermshot/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mermshot/1.0 (https://github.com/gaurav-prasanna/mermshot)"
)

// SourceLoader loads documents from the filesystem or over HTTP.
type SourceLoader struct {
	client *http.Client
}

// New creates a SourceLoader with a sensible HTTP timeout.
func New() *SourceLoader {
	return &SourceLoader{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// IsURL reports whether source should be fetched rather than read.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads the document named by source.
func (l *SourceLoader) Load(ctx context.Context, source string) (*core.Document, error) {
	var (
		data []byte
		kind core.DocumentKind
		err  error
	)

	if IsURL(source) {
		data, kind, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		kind = kindFromExtension(filepath.Ext(source))
	}
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, core.ErrNotUTF8
	}

	return &core.Document{
		Origin: source,
		Kind:   kind,
		Text:   string(data),
	}, nil
}

// fetch retrieves the body of the given URL.
func (l *SourceLoader) fetch(ctx context.Context, url string) ([]byte, core.DocumentKind, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, core.KindMarkdown, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/markdown,text/plain,text/html;q=0.9,*/*;q=0.5")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, core.KindMarkdown, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, core.KindMarkdown, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.KindMarkdown, fmt.Errorf("reading response body: %w", err)
	}

	kind := kindFromExtension(path.Ext(req.URL.Path))
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		kind = core.KindHTML
	}
	return body, kind, nil
}

func kindFromExtension(ext string) core.DocumentKind {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return core.KindHTML
	default:
		return core.KindMarkdown
	}
}
