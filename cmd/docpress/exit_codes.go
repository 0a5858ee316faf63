package main

import (
	"errors"

	docpress "github.com/docpress/docpress"
	"github.com/docpress/docpress/internal/manifest"
)

// Exit codes for the docpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom
// codes < 126. The build stages get distinct codes so CI can tell a
// converter failure from a TeX engine failure.
const (
	ExitSuccess     = 0 // Successful build
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, manifest, or validation
	ExitIO          = 3 // File not found, permission denied, publish failure
	ExitMarkdownPDF = 4 // Markdown → PDF (or → TeX) conversion stage failed
	ExitTeXPDF      = 5 // TeX → PDF typesetting stage failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Stage failures (exit 4/5)
	if errors.Is(err, docpress.ErrMarkdownToPDF) ||
		errors.Is(err, docpress.ErrMarkdownToTeX) {
		return ExitMarkdownPDF
	}
	if errors.Is(err, docpress.ErrTeXToPDF) {
		return ExitTeXPDF
	}

	// I/O errors (exit 3)
	if errors.Is(err, docpress.ErrPublish) ||
		errors.Is(err, docpress.ErrProcessStart) ||
		errors.Is(err, docpress.ErrPreviewRender) {
		return ExitIO
	}

	// Usage/manifest/validation errors (exit 2)
	if errors.Is(err, manifest.ErrManifestNotFound) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrNoSources) ||
		errors.Is(err, manifest.ErrNoLanguages) ||
		errors.Is(err, manifest.ErrDuplicateLanguage) ||
		errors.Is(err, manifest.ErrUnknownLanguage) ||
		errors.Is(err, manifest.ErrEmptyTargetName) ||
		errors.Is(err, manifest.ErrUndefinedParameter) ||
		errors.Is(err, docpress.ErrNoSources) ||
		errors.Is(err, docpress.ErrInvalidLanguage) ||
		errors.Is(err, docpress.ErrEmptyTargetName) ||
		errors.Is(err, docpress.ErrFilterPattern) {
		return ExitUsage
	}

	return ExitGeneral
}
