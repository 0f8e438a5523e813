// Package job runs input → output conversions through the pipeline:
// load → (normalize) → extract → render.
//
// Jobs run strictly one after another. Per-job failures are reported and
// recorded in the returned results; only a source read error stops the run.
package job

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/fetch"
	"github.com/gaurav-prasanna/mermshot/core/page"
)

// Reporter receives progress and outcome events.
type Reporter interface {
	Start(job core.Job)
	Result(res core.Result)
}

// Runner drives jobs through the pipeline stages.
type Runner struct {
	Loader     core.Loader
	Normalizer core.Normalizer
	Extractor  core.Extractor
	Renderer   core.Renderer
	Reporter   Reporter
}

// Run processes jobs in order. The returned error is non-nil only when a
// source could not be read; results up to that point are still returned.
func (r *Runner) Run(ctx context.Context, jobs []core.Job) ([]core.Result, error) {
	results := make([]core.Result, 0, len(jobs))
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := r.RunJob(ctx, j)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RunJob processes a single job.
func (r *Runner) RunJob(ctx context.Context, j core.Job) (core.Result, error) {
	if !fetch.IsURL(j.Input) {
		if _, err := os.Stat(j.Input); errors.Is(err, fs.ErrNotExist) {
			return core.Result{Job: j, Status: core.StatusSkipped}, nil
		}
	}

	r.Reporter.Start(j)

	// 1. Load
	doc, err := r.Loader.Load(ctx, j.Input)
	if err != nil {
		return core.Result{}, fmt.Errorf("reading %s: %w", j.Input, err)
	}

	// 2. Normalize HTML sources to Markdown
	markdown := doc.Text
	if doc.Kind == core.KindHTML {
		markdown, err = r.Normalizer.Normalize(doc.Text)
		if err != nil {
			return r.finish(j, core.Result{Status: core.StatusFailed, Err: fmt.Errorf("normalize: %w", err)}), nil
		}
	}

	// 3. Extract
	source, ok := r.Extractor.Extract(markdown)
	if !ok {
		return r.finish(j, core.Result{Status: core.StatusNoDiagram, Err: core.ErrNoDiagram}), nil
	}

	// 4. Render
	return r.finish(j, r.Renderer.Render(ctx, source, j.Output)), nil
}

func (r *Runner) finish(j core.Job, res core.Result) core.Result {
	res.Job = j
	r.Reporter.Result(res)
	return res
}

// DefaultJobs returns the two architecture diagrams looked up in baseDir.
func DefaultJobs(baseDir string) []core.Job {
	return []core.Job{
		{
			Title:  "Electron application architecture",
			Input:  filepath.Join(baseDir, "architecture-electron.md"),
			Output: filepath.Join(baseDir, "architecture-electron.png"),
		},
		{
			Title:  "Autoscript system architecture",
			Input:  filepath.Join(baseDir, "architecture-autoscript.md"),
			Output: filepath.Join(baseDir, "architecture-autoscript.png"),
		},
	}
}

// FromInputs builds one job per input, deriving the output path by swapping
// the input's extension for format (e.g. "png"). When outDir is set, outputs
// are placed there instead of next to their inputs. URL inputs without an
// outDir are written to the working directory.
func FromInputs(inputs []string, format, outDir string) []core.Job {
	jobs := make([]core.Job, 0, len(inputs))
	for _, in := range inputs {
		base := filepath.Base(in)
		out := page.SwapExt(in, "."+format)

		if fetch.IsURL(in) {
			base = urlBase(in)
			out = page.SwapExt(base, "."+format)
		}
		if outDir != "" {
			out = filepath.Join(outDir, page.SwapExt(base, "."+format))
		}

		jobs = append(jobs, core.Job{
			Title:  base,
			Input:  in,
			Output: out,
		})
	}
	return jobs
}

// urlBase returns the last path segment of a URL, or "diagram" if it has none.
func urlBase(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "diagram"
	}
	base := path.Base(strings.TrimSuffix(u.Path, "/"))
	if base == "." || base == "/" || base == "" {
		return "diagram"
	}
	return base
}
