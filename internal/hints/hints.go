// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>"
// for appending to error messages.
package hints

import "strings"

// ForPandocNotFound returns hints for a missing converter binary.
func ForPandocNotFound() string {
	return format("install pandoc 2.x or later and ensure it is on PATH")
}

// ForTeXNotFound returns hints for a missing TeX engine.
func ForTeXNotFound() string {
	return format("install a TeX distribution (e.g. TeX Live) providing xelatex")
}

// ForManifestNotFound returns hints for a missing build manifest.
func ForManifestNotFound(path string) string {
	return format("create " + path + " or pass --config /path/to/manifest.yaml")
}

// ForStageFailure points at the suppression log after a converter
// failure, where the silenced diagnostics end up.
func ForStageFailure(logName string) string {
	return format("full converter output above; suppressed warnings, if any, are in " + logName)
}

// format renders hints in the standard style.
func format(hints ...string) string {
	if len(hints) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString("\n  hint: ")
		sb.WriteString(h)
	}
	return sb.String()
}
