package docpress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSource writes a markdown file into dir and returns its path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPreview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeSource(t, dir, "index.md", "# Overview\n\nIntro text.\n")
	second := writeSource(t, dir, "kernel.md", "## Kernel\n\n```go\nfunc main() {}\n```\n")

	html, err := Preview(context.Background(), "User Manual", []string{first, second})
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}

	for _, want := range []string{
		"<title>User Manual</title>",
		"<h1>Overview</h1>",
		"<h2>Kernel</h2>",
		"<pre",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Preview() output missing %q", want)
		}
	}

	// Sources must appear in manifest order.
	if strings.Index(html, "Overview") > strings.Index(html, "Kernel") {
		t.Error("Preview() sources rendered out of order")
	}
}

func TestPreview_EscapesTitle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeSource(t, dir, "index.md", "text\n")

	html, err := Preview(context.Background(), `Manual <& Co>`, []string{src})
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if !strings.Contains(html, "<title>Manual &lt;&amp; Co&gt;</title>") {
		t.Error("Preview() did not escape the title")
	}
}

func TestPreview_MissingSource(t *testing.T) {
	t.Parallel()

	_, err := Preview(context.Background(), "Manual", []string{"no/such/file.md"})
	if !errors.Is(err, ErrPreviewRender) {
		t.Errorf("Preview() error = %v, want ErrPreviewRender", err)
	}
}

func TestPreview_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Preview(ctx, "Manual", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Preview() error = %v, want context.Canceled", err)
	}
}
