package docpress

import "fmt"

// Language codes for the manual variants.
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

// Default locations used when a Book leaves them empty.
const (
	DefaultBuildDir   = "build"
	DefaultPublishDir = "site/pdf"
)

// FontSpec describes the fonts passed to the TeX engine. Directories
// are resolved relative to the working directory of the build.
type FontSpec struct {
	Main      string // main font family file base name
	MainDir   string // directory holding the main font files
	Mono      string // monospace font file name
	MonoDir   string // directory holding the monospace font
	MonoScale string // e.g. "0.9", empty = no scaling
	Sans      string // sans font family, empty = same as Main
	SansDir   string // directory for the sans font, empty = MainDir
}

// Book describes one build target: an ordered list of Markdown sources
// rendered into a single typeset PDF. A Book is a plain value; the
// pipeline never mutates it.
type Book struct {
	Sources    []string // ordered Markdown source paths (required)
	Language   string   // "en" or "ru" (required)
	TargetName string   // output base name, e.g. "manual-en" (required)
	BuildDir   string   // intermediate output dir (default: "build")
	PublishDir string   // where the finished PDF is moved (default: "site/pdf")

	Title   string // document title, shown in the footer center
	Version string // version string, shown in the footer left

	Template   string   // LaTeX template path (default: built-in eisvogel path)
	LuaFilters []string // pandoc --lua-filter paths
	Filters    []string // pandoc --filter programs

	TOCTitle            string // heading above the table of contents
	TitlePageBackground string // background image for the title page
	TitleDate           string // year shown on the title page

	Fonts FontSpec

	// Suppress lists regular expressions for converter output lines to
	// silence; see Run for the matching and accounting rules.
	Suppress []string
}

// Validate checks that the required Book fields are present.
func (b *Book) Validate() error {
	if len(b.Sources) == 0 {
		return ErrNoSources
	}
	if b.TargetName == "" {
		return ErrEmptyTargetName
	}
	switch b.Language {
	case LanguageEnglish, LanguageRussian:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, b.Language)
	}
	return nil
}

// buildDir returns the build directory, falling back to the default.
func (b *Book) buildDir() string {
	if b.BuildDir == "" {
		return DefaultBuildDir
	}
	return b.BuildDir
}

// publishDir returns the publish directory, falling back to the default.
func (b *Book) publishDir() string {
	if b.PublishDir == "" {
		return DefaultPublishDir
	}
	return b.PublishDir
}

// tocTitle returns the TOC heading, defaulting per language.
func (b *Book) tocTitle() string {
	if b.TOCTitle != "" {
		return b.TOCTitle
	}
	if b.Language == LanguageRussian {
		return "Содержание"
	}
	return "Content"
}
