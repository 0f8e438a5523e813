// Package cmd — extract command.
// Prints the diagram source instead of rendering it.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/extract"
	"github.com/gaurav-prasanna/mermshot/core/fetch"
	"github.com/gaurav-prasanna/mermshot/core/normalize"
)

var extractCmd = &cobra.Command{
	Use:   "extract <input>",
	Short: "Print the first Mermaid diagram of a Markdown or HTML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	file, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	extractor, err := extract.ByName(file.Parser)
	if err != nil {
		return err
	}

	doc, err := fetch.New().Load(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	markdown := doc.Text
	if doc.Kind == core.KindHTML {
		if markdown, err = normalize.New().Normalize(doc.Text); err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	source, ok := extractor.Extract(markdown)
	if !ok {
		return fmt.Errorf("%s: %w", args[0], core.ErrNoDiagram)
	}

	fmt.Fprintln(cmd.OutOrStdout(), source)
	return nil
}
