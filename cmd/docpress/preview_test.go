package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRunPreviewCmd exercises the full preview path: manifest loading,
// book selection, rendering and output writing. Unlike build, preview
// needs no external tools, so it can run end to end.
func TestRunPreviewCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	srcDir := filepath.Join(dir, "docs", "en")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "index.md"), []byte("# Overview\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	manifestPath := filepath.Join(dir, "docpress.yaml")
	manifestYAML := `
title: User Manual
sources: [index.md]
languages:
  - code: en
    sourceDir: ` + srcDir + `
    targetName: manual-en
`
	if err := os.WriteFile(manifestPath, []byte(manifestYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "out", "preview.html")
	env, stdout, _ := testEnv()

	code := run([]string{"docpress", "preview", "-c", manifestPath, "-o", output}, env)
	if code != ExitSuccess {
		t.Fatalf("run(preview) = %d, want %d\nstdout: %s", code, ExitSuccess, stdout.String())
	}

	html, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("preview output missing: %v", err)
	}
	if !strings.Contains(string(html), "<h1>Overview</h1>") {
		t.Errorf("preview output missing heading:\n%s", html)
	}
	if !strings.Contains(stdout.String(), "Created "+output) {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunBuildCmdManifestMissing(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	if code := run([]string{"docpress", "build", "-c", missing}, env); code != ExitUsage {
		t.Errorf("run(build, missing manifest) = %d, want %d", code, ExitUsage)
	}
}
