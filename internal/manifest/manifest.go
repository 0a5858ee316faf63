// Package manifest loads and validates the docpress.yaml build
// manifest: the ordered source list, the per-language targets and the
// templating inputs handed to the conversion pipeline.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultName is the manifest file looked up in the working directory
// when no explicit path is given.
const DefaultName = "docpress.yaml"

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound   = errors.New("manifest file not found")
	ErrManifestParse      = errors.New("failed to parse manifest")
	ErrNoSources          = errors.New("manifest lists no sources")
	ErrNoLanguages        = errors.New("manifest lists no languages")
	ErrDuplicateLanguage  = errors.New("duplicate language code")
	ErrUnknownLanguage    = errors.New("language not in manifest")
	ErrEmptyTargetName    = errors.New("language target name cannot be empty")
	ErrUndefinedParameter = errors.New("undefined substitution parameter")
)

// paramPattern matches $name references inside source entries.
var paramPattern = regexp.MustCompile(`\$(\w+)`)

// Manifest describes one manual: shared metadata, the ordered source
// list and the language variants built from it.
type Manifest struct {
	Title      string            `yaml:"title"`
	Version    string            `yaml:"version"`
	TitleDate  string            `yaml:"titleDate"`
	BuildDir   string            `yaml:"buildDir"`   // default: "build"
	PublishDir string            `yaml:"publishDir"` // default: "site/pdf"
	Template   string            `yaml:"template"`   // LaTeX template path
	Sources    []string          `yaml:"sources"`    // ordered, shared across languages
	Parameters map[string]string `yaml:"parameters"` // values for $name references
	Languages  []Language        `yaml:"languages"`
	Suppress   []string          `yaml:"suppress"` // warning suppression patterns
	Fonts      Fonts             `yaml:"fonts"`
	LuaFilters []string          `yaml:"luaFilters"`
	Filters    []string          `yaml:"filters"`
}

// Language describes one language variant of the manual.
type Language struct {
	Code                string `yaml:"code"`       // "en", "ru"
	SourceDir           string `yaml:"sourceDir"`  // prepended to each source entry
	TargetName          string `yaml:"targetName"` // output base name
	TOCTitle            string `yaml:"tocTitle"`
	TitlePageBackground string `yaml:"titlePageBackground"`
}

// Fonts carries the font configuration forwarded to the TeX engine.
type Fonts struct {
	Main      string `yaml:"main"`
	MainDir   string `yaml:"mainDir"`
	Mono      string `yaml:"mono"`
	MonoDir   string `yaml:"monoDir"`
	MonoScale string `yaml:"monoScale"`
	Sans      string `yaml:"sans"`
	SansDir   string `yaml:"sansDir"`
}

// Load reads, parses, substitutes and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path chosen by the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}

	if err := m.expandParameters(path); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m.applyDefaults()
	return &m, nil
}

// Find resolves the manifest path: an explicit path wins, otherwise
// DefaultName in the working directory.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultName
}

// Language returns the variant with the given code.
func (m *Manifest) Language(code string) (Language, error) {
	for _, lang := range m.Languages {
		if lang.Code == code {
			return lang, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// Validate checks structural requirements after substitution.
func (m *Manifest) Validate() error {
	if len(m.Sources) == 0 {
		return ErrNoSources
	}
	if len(m.Languages) == 0 {
		return ErrNoLanguages
	}

	seen := make(map[string]bool, len(m.Languages))
	for _, lang := range m.Languages {
		if seen[lang.Code] {
			return fmt.Errorf("%w: %q", ErrDuplicateLanguage, lang.Code)
		}
		seen[lang.Code] = true
		if lang.TargetName == "" {
			return fmt.Errorf("%w: language %q", ErrEmptyTargetName, lang.Code)
		}
	}
	return nil
}

// expandParameters replaces $name references in source entries with
// values from the parameters map. A reference with no parameter value
// is an error naming both the parameter and the manifest file; entries
// whose parameter value is empty are dropped, so optional sources can
// be switched off per checkout.
func (m *Manifest) expandParameters(path string) error {
	expanded := make([]string, 0, len(m.Sources))
	for _, src := range m.Sources {
		ref := paramPattern.FindStringSubmatch(src)
		if ref == nil {
			expanded = append(expanded, src)
			continue
		}

		name := ref[1]
		value, ok := m.Parameters[name]
		if !ok {
			return fmt.Errorf("%w: %q in %s", ErrUndefinedParameter, name, path)
		}
		if value == "" {
			continue
		}
		expanded = append(expanded, strings.ReplaceAll(src, "$"+name, value))
	}

	m.Sources = expanded
	return nil
}

func (m *Manifest) applyDefaults() {
	if m.BuildDir == "" {
		m.BuildDir = "build"
	}
	if m.PublishDir == "" {
		m.PublishDir = "site/pdf"
	}
}
