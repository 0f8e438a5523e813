// Package config holds the renderer settings and the optional YAML job file.
//
// A job file looks like:
//
//	theme: forest
//	timeout: 20s
//	jobs:
//	  - title: Electron application architecture
//	    input: architecture-electron.md
//	    output: architecture-electron.png
//
// Relative job paths are resolved against the directory of the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/mermshot/core"
	"github.com/gaurav-prasanna/mermshot/core/extract"
	"github.com/gaurav-prasanna/mermshot/core/fetch"
	"github.com/gaurav-prasanna/mermshot/core/job"
	"github.com/gaurav-prasanna/mermshot/core/page"
	"github.com/gaurav-prasanna/mermshot/core/render"
)

// Options are the settings shared by every command.
type Options struct {
	Theme      string        `yaml:"theme"`
	MermaidURL string        `yaml:"mermaid_url"`
	Timeout    time.Duration `yaml:"timeout"`
	Browser    string        `yaml:"browser"`
	KeepHTML   bool          `yaml:"keep_html"`
	Parser     string        `yaml:"parser"`
}

// File is the decoded job file.
type File struct {
	Options `yaml:",inline"`
	Jobs    []core.Job `yaml:"jobs"`
}

// Default returns the built-in settings.
func Default() Options {
	return Options{
		Theme:      page.DefaultTheme,
		MermaidURL: page.DefaultMermaidURL,
		Timeout:    render.DefaultTimeout,
		Parser:     "regexp",
	}
}

// AddFlags binds the options to fs, using the current values as defaults.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Theme, "theme", "t", o.Theme, "Mermaid theme (default, dark, forest, neutral, base)")
	fs.StringVarP(&o.MermaidURL, "mermaid-url", "", o.MermaidURL, "URL of the Mermaid runtime loaded by the page")
	fs.DurationVarP(&o.Timeout, "timeout", "", o.Timeout, "How long to wait for the diagram to render")
	fs.StringVarP(&o.Browser, "browser", "b", o.Browser, "Chrome/Chromium executable (default: look up an installed browser)")
	fs.BoolVarP(&o.KeepHTML, "keep-html", "", o.KeepHTML, "Keep the intermediate HTML page next to the output")
	fs.StringVarP(&o.Parser, "parser", "p", o.Parser, fmt.Sprintf("Markdown parser used to find the diagram (one of %v)", extract.Parsers))
}

// Override copies every option whose flag was set explicitly in fs from
// flags into o. Flags win over the job file, which wins over defaults.
func (o *Options) Override(fs *pflag.FlagSet, flags Options) {
	if fs.Changed("theme") {
		o.Theme = flags.Theme
	}
	if fs.Changed("mermaid-url") {
		o.MermaidURL = flags.MermaidURL
	}
	if fs.Changed("timeout") {
		o.Timeout = flags.Timeout
	}
	if fs.Changed("browser") {
		o.Browser = flags.Browser
	}
	if fs.Changed("keep-html") {
		o.KeepHTML = flags.KeepHTML
	}
	if fs.Changed("parser") {
		o.Parser = flags.Parser
	}
}

// Validate checks the options for values the pipeline cannot use.
func (o Options) Validate() error {
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	if o.Theme == "" {
		return errors.New("theme must not be empty")
	}
	if o.Parser != "" && !slices.Contains(extract.Parsers, o.Parser) {
		return fmt.Errorf("unknown parser %q, must be one of %v", o.Parser, extract.Parsers)
	}
	return nil
}

// RenderOptions converts the settings into renderer options.
func (o Options) RenderOptions() render.Options {
	return render.Options{
		Page: page.Options{
			MermaidURL: o.MermaidURL,
			Theme:      o.Theme,
		},
		Timeout:  o.Timeout,
		KeepHTML: o.KeepHTML,
	}
}

// Load reads a job file. Unset options keep their defaults.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	file.resolve(filepath.Dir(path))
	return file, nil
}

// Decode parses a job file from r without resolving paths.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file := &File{Options: Default()}
	if len(bytes.TrimSpace(data)) == 0 {
		return file, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		return nil, err
	}

	for i, j := range file.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("job %d has no input", i+1)
		}
		derived := job.FromInputs([]string{j.Input}, "png", "")[0]
		if j.Output == "" {
			file.Jobs[i].Output = derived.Output
		}
		if j.Title == "" {
			file.Jobs[i].Title = derived.Title
		}
	}
	return file, nil
}

func (f *File) resolve(baseDir string) {
	for i := range f.Jobs {
		f.Jobs[i].Input = resolvePath(baseDir, f.Jobs[i].Input)
		f.Jobs[i].Output = resolvePath(baseDir, f.Jobs[i].Output)
	}
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || fetch.IsURL(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
