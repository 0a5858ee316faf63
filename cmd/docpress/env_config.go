package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envConfig holds configuration from environment variables. Provides
// CI/CD-friendly overrides without touching the manifest, plus a way
// to inject TeX-related variables (TEXINPUTS and friends) per checkout
// via a .env file.
type envConfig struct {
	ConfigPath string // DOCPRESS_CONFIG: manifest file path
	BuildDir   string // DOCPRESS_BUILD_DIR: intermediate output dir
	PublishDir string // DOCPRESS_PUBLISH_DIR: where finished PDFs go
	Lang       string // DOCPRESS_LANG: restrict build to one language
	NoColor    bool   // DOCPRESS_NO_COLOR: disable colored output
}

// knownEnvVars lists valid DOCPRESS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOCPRESS_CONFIG":      true,
	"DOCPRESS_BUILD_DIR":   true,
	"DOCPRESS_PUBLISH_DIR": true,
	"DOCPRESS_LANG":        true,
	"DOCPRESS_NO_COLOR":    true,
}

// loadEnvConfig reads configuration from environment variables.
// A .env file in the working directory is loaded first so that build
// environments can pin TEXINPUTS, PATH additions and DOCPRESS_*
// overrides; real environment variables win over .env entries.
func loadEnvConfig(getenv func(string) string) *envConfig {
	// Error ignored: a missing .env file is the normal case.
	_ = godotenv.Load()

	return &envConfig{
		ConfigPath: getenv("DOCPRESS_CONFIG"),
		BuildDir:   getenv("DOCPRESS_BUILD_DIR"),
		PublishDir: getenv("DOCPRESS_PUBLISH_DIR"),
		Lang:       getenv("DOCPRESS_LANG"),
		NoColor:    parseEnvBool(getenv("DOCPRESS_NO_COLOR")),
	}
}

// parseEnvBool interprets common truthy values.
func parseEnvBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// warnUnknownEnvVars warns about DOCPRESS_* variables that look like
// typos of the known ones.
func warnUnknownEnvVars(w io.Writer) {
	for _, entry := range os.Environ() {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, "DOCPRESS_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (possible typo?)\n", name)
		}
	}
}
