package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	docpress "github.com/docpress/docpress"
	"github.com/docpress/docpress/internal/console"
	"github.com/docpress/docpress/internal/hints"
	"github.com/docpress/docpress/internal/manifest"
)

// runBuildCmd executes the build command and returns an exit code.
func runBuildCmd(args []string, env *Environment) int {
	flags, _, err := parseBuildFlags(args)
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
	if lang == "" {
		lang = envCfg.Lang
	}

	books, err := selectBooks(m, lang)
	if err != nil {
		printer.Error("E: %v", err)
		return exitCodeFor(err)
	}

	pipeline := docpress.NewPipeline(
		docpress.WithPrinter(printer),
		docpress.WithStdout(env.Stdout),
	)

	start := env.Now()
	for _, book := range books {
		if err := pipeline.BuildBook(context.Background(), book, flags.viaTeX); err != nil {
			printBuildError(printer, err)
			return exitCodeFor(err)
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "build took %s\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if !flags.common.quiet {
		printer.Success("all targets built")
	}
	return ExitSuccess
}

// loadManifest resolves the manifest path (flag > env > default) and
// loads it, applying directory overrides from the environment.
func loadManifest(configFlag string, envCfg *envConfig) (*manifest.Manifest, error) {
	path := configFlag
	if path == "" {
		path = envCfg.ConfigPath
	}

	m, err := manifest.Load(manifest.Find(path))
	if err != nil {
		return nil, err
	}

	if envCfg.BuildDir != "" {
		m.BuildDir = envCfg.BuildDir
	}
	if envCfg.PublishDir != "" {
		m.PublishDir = envCfg.PublishDir
	}
	return m, nil
}

// selectBooks maps manifest languages to Book values, restricted to a
// single language when lang is non-empty.
func selectBooks(m *manifest.Manifest, lang string) ([]docpress.Book, error) {
	languages := m.Languages
	if lang != "" {
		variant, err := m.Language(lang)
		if err != nil {
			return nil, err
		}
		languages = []manifest.Language{variant}
	}

	books := make([]docpress.Book, 0, len(languages))
	for _, variant := range languages {
		books = append(books, bookFor(m, variant))
	}
	return books, nil
}

// bookFor assembles the Book for one language variant.
func bookFor(m *manifest.Manifest, lang manifest.Language) docpress.Book {
	sources := make([]string, 0, len(m.Sources))
	for _, src := range m.Sources {
		if lang.SourceDir != "" {
			src = lang.SourceDir + "/" + src
		}
		sources = append(sources, src)
	}

	return docpress.Book{
		Sources:             sources,
		Language:            lang.Code,
		TargetName:          lang.TargetName,
		BuildDir:            m.BuildDir,
		PublishDir:          m.PublishDir,
		Title:               m.Title,
		Version:             m.Version,
		TitleDate:           m.TitleDate,
		Template:            m.Template,
		LuaFilters:          m.LuaFilters,
		Filters:             m.Filters,
		TOCTitle:            lang.TOCTitle,
		TitlePageBackground: lang.TitlePageBackground,
		Fonts: docpress.FontSpec{
			Main:      m.Fonts.Main,
			MainDir:   m.Fonts.MainDir,
			Mono:      m.Fonts.Mono,
			MonoDir:   m.Fonts.MonoDir,
			MonoScale: m.Fonts.MonoScale,
			Sans:      m.Fonts.Sans,
			SansDir:   m.Fonts.SansDir,
		},
		Suppress: m.Suppress,
	}
}

// printLoadError prints a manifest loading failure with a hint.
func printLoadError(printer *console.Printer, err error) {
	printer.Error("E: %v", err)
	if errors.Is(err, manifest.ErrManifestNotFound) {
		printer.Error("%s", hints.ForManifestNotFound(manifest.DefaultName))
	}
}

// printBuildError prints a stage failure with an actionable hint.
func printBuildError(printer *console.Printer, err error) {
	printer.Error("E: %v", err)
	switch {
	case errors.Is(err, docpress.ErrTeXToPDF) && errors.Is(err, docpress.ErrProcessStart):
		printer.Error("%s", hints.ForTeXNotFound())
	case errors.Is(err, docpress.ErrProcessStart):
		printer.Error("%s", hints.ForPandocNotFound())
	case errors.Is(err, docpress.ErrTeXToPDF),
		errors.Is(err, docpress.ErrMarkdownToPDF),
		errors.Is(err, docpress.ErrMarkdownToTeX):
		printer.Error("%s", hints.ForStageFailure(docpress.SuppressedLogName))
	}
}
