// Package docpress builds typeset PDF manuals from ordered Markdown
// sources by driving an external converter (pandoc) and TeX engine
// (xelatex) as child processes.
//
// # Quick Start
//
// Describe the manual as a Book and run the pipeline:
//
//	book := docpress.Book{
//	    Sources:    []string{"docs/en/index.md", "docs/en/kernel.md"},
//	    Language:   docpress.LanguageEnglish,
//	    TargetName: "manual-en",
//	    BuildDir:   "build",
//	    PublishDir: "site/pdf",
//	    Title:      "User Manual",
//	}
//
//	p := docpress.NewPipeline()
//	if err := p.BuildBook(ctx, book); err != nil {
//	    log.Fatal(err)
//	}
//
// # Conversion Stages
//
//  1. Markdown → PDF via pandoc with the hand-tuned option vector
//     (fonts, title page, headers/footers, TOC, xelatex engine options)
//  2. Optionally Markdown → TeX followed by TeX → PDF for debugging
//     the intermediate LaTeX
//  3. The finished PDF is moved to the publish directory
//
// Each stage is one invocation of Run, which multiplexes the child's
// stdout and stderr into a single ordered console stream, suppresses
// known-benign warning lines by regular expression, and rewrites the
// converter's trailing "Errors: N, Warnings: M" summary to account for
// the suppressed lines.
//
// # External Requirements
//
// Building PDFs requires pandoc and xelatex on PATH. Run
// "docpress doctor" to check the toolchain. The HTML preview
// (Preview) is pure Go and needs neither.
package docpress
