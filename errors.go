package docpress

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSources       = errors.New("book has no sources")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrEmptyTargetName = errors.New("target name cannot be empty")

	// Runner errors.
	ErrProcessStart  = errors.New("failed to start process")
	ErrFilterPattern = errors.New("invalid suppression pattern")

	// Stage failures. Each carries the non-zero exit code of the
	// external tool; callers map them to distinct process exit codes.
	ErrMarkdownToPDF = errors.New("markdown to PDF conversion failed")
	ErrMarkdownToTeX = errors.New("markdown to TeX conversion failed")
	ErrTeXToPDF      = errors.New("TeX to PDF conversion failed")
	ErrPublish       = errors.New("failed to publish PDF")

	// Preview errors.
	ErrPreviewRender = errors.New("HTML preview rendering failed")
)
