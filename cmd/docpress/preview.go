package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	docpress "github.com/docpress/docpress"
	"github.com/docpress/docpress/internal/console"
	"github.com/docpress/docpress/internal/fileutil"
)

// runPreviewCmd renders the manual sources to a single HTML file.
func runPreviewCmd(args []string, env *Environment) int {
	flags, _, err := parsePreviewFlags(args)
	if err != nil {
		return ExitUsage
	}

	envCfg := loadEnvConfig(env.Getenv)
	printer := console.New(env.Stdout, flags.common.noColor || envCfg.NoColor)

	m, err := loadManifest(flags.common.config, envCfg)
	if err != nil {
		printLoadError(printer, err)
		return exitCodeFor(err)
	}

	lang := flags.lang
	if lang == "" && len(m.Languages) > 0 {
		lang = m.Languages[0].Code
	}
	books, err := selectBooks(m, lang)
	if err != nil {
		printer.Error("E: %v", err)
		return exitCodeFor(err)
	}
	book := books[0]

	html, err := docpress.Preview(context.Background(), m.Title, book.Sources)
	if err != nil {
		printer.Error("E: %v", err)
		return exitCodeFor(err)
	}

	output := flags.output
	if output == "" {
		output = filepath.Join(book.BuildDir, book.TargetName+".html")
	}
	if err := fileutil.EnsureDir(filepath.Dir(output)); err != nil {
		printer.Error("E: %v", err)
		return ExitIO
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		printer.Error("E: writing %s: %v", output, err)
		return ExitIO
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return ExitSuccess
}
