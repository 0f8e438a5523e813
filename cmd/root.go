// Package cmd implements the CLI commands for mermshot using Cobra.
//
// Run without a subcommand, mermshot looks for the architecture diagrams
// (architecture-electron.md, architecture-autoscript.md) in --dir, or
// runs the jobs of --config, and writes a PNG next to each input.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mermshot/config"
	"github.com/gaurav-prasanna/mermshot/core/job"
)

// Flag variables.
var (
	flagOpts   = config.Default()
	flagConfig string
	flagDir    string
)

var rootCmd = &cobra.Command{
	Use:   "mermshot",
	Short: "mermshot — render Mermaid diagrams from Markdown into images",
	Long: `mermshot extracts the first Mermaid diagram from a Markdown file, renders it
in a headless Chrome/Chromium and saves a screenshot of the resulting SVG.

Without a subcommand it renders architecture-electron.md and
architecture-autoscript.md from --dir (or the jobs listed in --config).

Examples:
  mermshot
  mermshot --dir docs --theme dark
  mermshot --config mermshot.yaml
  mermshot render README.md --format pdf
  mermshot render --glob 'docs/**/*.md' --out-dir build/diagrams
  mermshot extract docs/architecture.md`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDefault,
}

func init() {
	flagOpts.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "YAML job file")

	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "Directory holding the architecture diagrams (default: current directory)")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mermshot: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func runDefault(cmd *cobra.Command, args []string) error {
	file, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	jobs := file.Jobs
	if len(jobs) == 0 {
		dir := flagDir
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
		}
		jobs = job.DefaultJobs(dir)
	}

	return runJobs(cmd, file.Options, jobs)
}
