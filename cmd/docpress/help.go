package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpress <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build the PDF manual(s) from the manifest (default)")
	fmt.Fprintln(w, "  preview    Render the sources to a single HTML file")
	fmt.Fprintln(w, "  doctor     Check the external toolchain and manifest")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docpress help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpress build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the PDF manual for every language in the manifest.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>   Manifest file path (default: docpress.yaml)")
	fmt.Fprintln(w, "  -l, --lang <code>     Build only this language (en, ru)")
	fmt.Fprintln(w, "      --tex             Build via Markdown→TeX→PDF (keeps the .tex)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show commands and timing")
	fmt.Fprintln(w, "      --no-color        Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCPRESS_CONFIG, DOCPRESS_BUILD_DIR, DOCPRESS_PUBLISH_DIR,")
	fmt.Fprintln(w, "  DOCPRESS_LANG, DOCPRESS_NO_COLOR; a .env file in the working")
	fmt.Fprintln(w, "  directory is loaded first (e.g. for TEXINPUTS).")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpress preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the ordered sources to one HTML file for fast iteration.")
	fmt.Fprintln(w, "Pure Go; does not require pandoc or a TeX installation.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>   Manifest file path (default: docpress.yaml)")
	fmt.Fprintln(w, "  -l, --lang <code>     Language to preview (default: first in manifest)")
	fmt.Fprintln(w, "  -o, --output <path>   Output HTML path")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpress doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that pandoc and xelatex are installed, the manifest parses,")
	fmt.Fprintln(w, "and the build directory is writable. Exits non-zero on errors.")
}
