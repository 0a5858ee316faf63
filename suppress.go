package docpress

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// SuppressedLogName is the file the suppressed lines are written to,
// relative to the working directory of the run. The historical
// misspelling is kept: downstream tooling greps for this exact name.
const SuppressedLogName = "suppresed-warnings.log"

// summaryPattern matches the converter's aggregate diagnostics line,
// e.g. "Errors: 3, Warnings: 5".
var summaryPattern = regexp.MustCompile(`(Errors:\s\d+,\sWarnings:\s)(\d+)`)

// FilterSet holds compiled suppression patterns. A FilterSet is
// immutable after CompileFilters and safe for reuse across runs; the
// suppressed lines themselves are accumulated per run by Run.
type FilterSet struct {
	patterns []*regexp.Regexp
}

// CompileFilters compiles suppression patterns into a FilterSet.
// A malformed pattern is reported up front instead of failing mid-run.
// An empty or nil pattern list yields a nil FilterSet, which disables
// suppression and summary rewriting entirely.
func CompileFilters(patterns []string) (*FilterSet, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrFilterPattern, p, err)
		}
		compiled = append(compiled, re)
	}

	return &FilterSet{patterns: compiled}, nil
}

// Match reports whether line matches any suppression pattern.
// Patterns are tested in order; the first match wins.
func (f *FilterSet) Match(line string) bool {
	if f == nil {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (f *FilterSet) Len() int {
	if f == nil {
		return 0
	}
	return len(f.patterns)
}

// rewriteSummary rewrites a summary line to account for suppressed
// warnings. Given "Errors: 3, Warnings: 5" and suppressed == 2 it
// returns "Errors: 3, Warnings: 3 (Suppressed warnings: 2)" and true.
// Non-summary lines return ("", false).
func rewriteSummary(line string, suppressed int) (string, bool) {
	m := summaryPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	warnings, err := strconv.Atoi(m[2])
	if err != nil {
		return "", false
	}

	return m[1] + strconv.Itoa(warnings-suppressed) +
		" (Suppressed warnings: " + strconv.Itoa(suppressed) + ")", true
}

// writeSuppressedLog truncates and rewrites the suppression log in dir
// with one suppressed line per record. Called on every summary-line
// match, so within a run later flushes overwrite earlier ones with a
// superset of the same lines.
func writeSuppressedLog(dir string, lines []string) error {
	if dir == "" {
		dir = "."
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	path := filepath.Join(dir, SuppressedLogName)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing suppression log: %w", err)
	}
	return nil
}
