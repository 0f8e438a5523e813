// Package report prints human-readable progress and outcome lines.
// Successes go to the standard writer, failures to the error writer.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gaurav-prasanna/mermshot/core"
)

// Console reports job progress to a pair of writers.
type Console struct {
	out    io.Writer
	errOut io.Writer

	accent lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style

	started int
}

// New creates a Console. Colors are only emitted when the writer is a terminal.
func New(out, errOut io.Writer) *Console {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Console{
		out:    out,
		errOut: errOut,
		accent: outR.NewStyle().Bold(true),
		ok:     outR.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   errR.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Start announces a job whose input exists.
func (c *Console) Start(job core.Job) {
	if c.started > 0 {
		fmt.Fprintln(c.out)
	}
	c.started++
	fmt.Fprintf(c.out, "📊 %s\n", c.accent.Render("Generating "+job.Title+"..."))
}

// Result prints the outcome of a job. Skipped jobs print nothing.
func (c *Console) Result(res core.Result) {
	switch res.Status {
	case core.StatusSkipped:
	case core.StatusRendered:
		fmt.Fprintf(c.out, "%s Written: %s\n", c.ok.Render("✓"), res.Output)
	case core.StatusNoDiagram:
		fmt.Fprintf(c.errOut, "%s Mermaid diagram not found in %s\n", c.fail.Render("✗"), res.Job.Input)
	case core.StatusMissingDependency:
		fmt.Fprintf(c.errOut, "%s Missing dependency: %v\n", c.fail.Render("✗"), res.Err)
	case core.StatusElementNotFound:
		fmt.Fprintf(c.errOut, "%s SVG element not found: %v\n", c.fail.Render("✗"), res.Err)
	default:
		fmt.Fprintf(c.errOut, "%s Image generation failed: %v\n", c.fail.Render("✗"), res.Err)
	}
}

// Summary prints a failure count when any attempted job did not render.
func (c *Console) Summary(results []core.Result) {
	var attempted, failed int
	for _, res := range results {
		if res.Status == core.StatusSkipped {
			continue
		}
		attempted++
		if !res.OK() {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(c.errOut, "\n%d/%d diagrams failed\n", failed, attempted)
	}
}
