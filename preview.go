package docpress

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps the rendered fragment in a complete HTML5
// document. The inline style keeps the preview readable without any
// external assets.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 52rem; margin: 2rem auto; padding: 0 1rem;
       font-family: sans-serif; line-height: 1.5; }
pre { padding: 0.75rem; overflow-x: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
%s
</body>
</html>`

// Preview renders the ordered Markdown sources into a single HTML
// document for fast authoring iteration. It uses a pure-Go renderer,
// so neither pandoc nor a TeX installation is needed; the result
// approximates structure and code highlighting, not the typeset PDF.
func Preview(ctx context.Context, title string, sources []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var md bytes.Buffer
	for _, src := range sources {
		content, err := os.ReadFile(src) // #nosec G304 -- paths come from the build manifest
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrPreviewRender, src, err)
		}
		md.Write(content)
		md.WriteString("\n\n")
	}

	fragment, err := renderMarkdown(ctx, md.Bytes())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(previewTemplate, html.EscapeString(title), fragment), nil
}

// renderMarkdown converts Markdown to an HTML fragment via goldmark.
// Goldmark has no native context support, so cancellation uses the
// goroutine + select pattern.
func renderMarkdown(ctx context.Context, content []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
		),
	)

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert(content, &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: strings.TrimRight(buf.String(), "\n")}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
