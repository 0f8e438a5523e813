// Package cmd — render command.
// Renders explicitly named inputs and glob matches, one output per input.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mermshot/core/job"
	"github.com/gaurav-prasanna/mermshot/core/output"
	"github.com/gaurav-prasanna/mermshot/discover"
)

var (
	flagGlobs  []string
	flagFormat string
	flagOutDir string
)

var renderCmd = &cobra.Command{
	Use:   "render [input...]",
	Short: "Render the Mermaid diagram of each input file or URL",
	Long: `Render extracts the first Mermaid diagram from every input (Markdown or HTML,
local path or http(s) URL) and writes an image next to it, swapping the
extension for the chosen format. Inputs that do not exist are skipped.

Examples:
  mermshot render architecture.md
  mermshot render docs/a.md docs/b.html --format svg
  mermshot render --glob 'docs/**/*.md' --out-dir build/diagrams`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVarP(&flagGlobs, "glob", "g", nil, "Glob pattern selecting inputs, ** matches directories (repeatable)")
	renderCmd.Flags().StringVarP(&flagFormat, "format", "f", "png", fmt.Sprintf("Output format (one of %v)", output.Formats))
	renderCmd.Flags().StringVarP(&flagOutDir, "out-dir", "o", "", "Write outputs here instead of next to the inputs")
}

func runRender(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(strings.TrimPrefix(flagFormat, "."))
	if !output.Supported(format) {
		return fmt.Errorf("invalid output format %q, must be one of %v", flagFormat, output.Formats)
	}
	if len(args) == 0 && len(flagGlobs) == 0 {
		return errors.New("no input provided: pass files, URLs or --glob")
	}

	file, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	inputs, err := discover.Inputs(args, flagGlobs)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No inputs matched.")
		return nil
	}

	return runJobs(cmd, file.Options, job.FromInputs(inputs, format, flagOutDir))
}
