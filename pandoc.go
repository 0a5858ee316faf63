package docpress

import "path/filepath"

// External tool names resolved via PATH.
const (
	PandocProgram = "pandoc"
	TeXProgram    = "xelatex"
)

// Defaults for the pandoc templating inputs. All of them can be
// overridden per Book; the values mirror the layout of the manual
// repository this tool builds.
const (
	DefaultTemplate = "templates/eisvogel.latex"
)

// defaultLuaFilters are applied when Book.LuaFilters is empty.
var defaultLuaFilters = []string{
	"filters/br2newline.lua",
	"filters/md2admon.lua",
	"filters/caption.lua",
	"filters/convert-link.lua",
}

// defaultFilters are applied when Book.Filters is empty.
var defaultFilters = []string{
	"pandoc-latex-environment",
	"pandoc-minted",
}

// readerFormat is the pandoc -f value: Markdown with YAML metadata
// blocks, pipe tables and single-backslash TeX math.
const readerFormat = "markdown" +
	"+yaml_metadata_block" +
	"+pipe_tables" +
	"+tex_math_single_backslash"

// headingSpacing tightens the vertical spacing of paragraph-level
// headings; injected via header-includes so the template stays stock.
const headingSpacing = `\widowpenalty=10000 \clubpenalty=10000 ` +
	`\RedeclareSectionCommand[beforeskip=1.8ex plus 0.5ex minus 0.2ex,` +
	`afterskip=0.8ex plus 0.2ex minus 0.1ex,font=\large\bfseries]{paragraph}` +
	`\RedeclareSectionCommand[beforeskip=1.4ex plus 0.4ex minus 0.2ex,` +
	`afterskip=0.6ex plus 0.1ex minus 0.1ex,font=\normalsize\bfseries\itshape]{subparagraph}`

// PandocArgs builds the full pandoc argument vector for a Book, without
// the trailing -o <target> and source list. The list is the hand-tuned
// templating configuration: lua filters, the eisvogel template, the
// xelatex engine options, TOC, fonts, title page, page geometry and
// running headers/footers.
func PandocArgs(b Book) []string {
	var args []string

	for _, f := range luaFilters(b) {
		args = append(args, "--lua-filter="+f)
	}
	for _, f := range pandocFilters(b) {
		args = append(args, "--filter", f)
	}

	args = append(args,
		"--template="+orDefault(b.Template, DefaultTemplate),
		"-f", readerFormat,
		"-V", "listings-disable-line-numbers=true",
		"--pdf-engine="+TeXProgram,
		"--pdf-engine-opt=--shell-escape",
		"--pdf-engine-opt=-interaction=scrollmode",
		"--pdf-engine-opt=-output-directory="+b.buildDir(),
		"--toc",
		"--toc-depth=4",
		"--number-sections",
		"-V", "toc-own-page=true",
		"--no-highlight",
		"-V", "listings=false",
		"-V", "codeBlockSurroundings=minted",
	)

	args = append(args, fontArgs(b.Fonts)...)

	args = append(args,
		"-V", "block-headings=true",
		"-V", "header-includes="+headingSpacing,
		"-M", "secnumdepth=4",
		"-V", "titlepage",
		"-V", "titlepage-rule-color=647687",
		"-V", "titlepage-text-color=eaecef",
		"-V", "classoption=twoside",
		"-V", "geometry=inner=3cm,outer=2cm,top=2.5cm,bottom=3cm",
		"-V", `header-left=\rightmark`,
		"-V", `header-center=\leftmark`,
		"-V", `header-right=\thedate`,
		"-V", "footer-left="+b.Version,
		"-V", "footer-center="+b.Title,
		"-V", `footer-right=\thepage`,
		"-V", `date=\today`,
	)
	if b.TitleDate != "" {
		args = append(args, "-V", "titledate="+b.TitleDate)
	}

	// Per-language templating.
	if b.TitlePageBackground != "" {
		args = append(args, "-V", "titlepage-background="+b.TitlePageBackground)
	}
	args = append(args, "-V", "toc-title="+b.tocTitle())

	return args
}

// fontArgs emits the main/mono/sans font options. The sans family
// falls back to the main family so headings and body text stay
// consistent when only one face is shipped with the docs.
func fontArgs(f FontSpec) []string {
	var args []string

	if f.Main != "" {
		args = append(args,
			"-V", "mainfont="+f.Main,
			"-V", "mainfontoptions=Path="+fontPath(f.MainDir),
			"-V", "mainfontoptions=Extension=.ttf",
			"-V", "mainfontoptions=UprightFont=*_rg",
			"-V", "mainfontoptions=BoldFont=*_bd",
		)
	}

	if f.Mono != "" {
		args = append(args,
			"-V", "monofont="+f.Mono,
			"-V", "monofontoptions=Path="+fontPath(f.MonoDir),
		)
		if f.MonoScale != "" {
			args = append(args, "-V", "monofontoptions=Scale="+f.MonoScale)
		}
	}

	sans := f.Sans
	sansDir := f.SansDir
	if sans == "" {
		sans, sansDir = f.Main, f.MainDir
	}
	if sans != "" {
		args = append(args,
			"-V", "sansfont="+sans,
			"-V", "sansfontoptions=Path="+fontPath(sansDir),
			"-V", "sansfontoptions=Extension=.ttf",
			"-V", "sansfontoptions=UprightFont=*_rg",
			"-V", "sansfontoptions=BoldFont=*_bd",
		)
	}

	return args
}

// fontPath normalizes a font directory for the fontspec Path option,
// which requires a trailing separator.
func fontPath(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(dir)) + "/"
}

func luaFilters(b Book) []string {
	if len(b.LuaFilters) > 0 {
		return b.LuaFilters
	}
	return defaultLuaFilters
}

func pandocFilters(b Book) []string {
	if len(b.Filters) > 0 {
		return b.Filters
	}
	return defaultFilters
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
