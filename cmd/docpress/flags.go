package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	lang   string
	viaTeX bool
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common commonFlags
	lang   string
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "manifest file path (default: docpress.yaml)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show commands and timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.lang, "lang", "l", "", "build only this language (en, ru)")
	fs.BoolVar(&f.viaTeX, "tex", false, "build via the Markdown→TeX→PDF two-stage path")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	fs.StringVarP(&f.lang, "lang", "l", "", "language to preview (default: first in manifest)")
	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (default: <build-dir>/<target>.html)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
