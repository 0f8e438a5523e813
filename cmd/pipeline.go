// Package cmd — pipeline wiring shared by the commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mermshot/config"
	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/extract"
	"github.com/gaurav-prasanna/mermshot/core/fetch"
	"github.com/gaurav-prasanna/mermshot/core/job"
	"github.com/gaurav-prasanna/mermshot/core/normalize"
	"github.com/gaurav-prasanna/mermshot/core/render"
	"github.com/gaurav-prasanna/mermshot/report"
)

// loadSettings merges defaults, the --config file and explicit flags.
func loadSettings(cmd *cobra.Command) (*config.File, error) {
	file := &config.File{Options: config.Default()}
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	file.Override(cmd.Flags(), flagOpts)
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return file, nil
}

// runJobs wires the pipeline and processes jobs, printing a summary.
// Per-job failures are reported but do not fail the command.
func runJobs(cmd *cobra.Command, opts config.Options, jobs []core.Job) error {
	extractor, err := extract.ByName(opts.Parser)
	if err != nil {
		return err
	}

	reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	runner := &job.Runner{
		Loader:     fetch.New(),
		Normalizer: normalize.New(),
		Extractor:  extractor,
		Renderer:   render.New(render.NewRodLauncher(opts.Browser), opts.RenderOptions()),
		Reporter:   reporter,
	}

	results, err := runner.Run(cmd.Context(), jobs)
	reporter.Summary(results)
	return err
}
