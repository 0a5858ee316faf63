package docpress

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/docpress/docpress/internal/console"
)

// fakeRunner records the specs it was invoked with and plays back
// scripted exit codes.
type fakeRunner struct {
	specs []Spec
	codes []int // consumed in order; missing entries mean 0
	err   error
	// onRun lets a test produce side effects (e.g. create the output
	// file pandoc would have written).
	onRun func(spec Spec)
}

func (f *fakeRunner) run(_ context.Context, spec Spec) (int, error) {
	f.specs = append(f.specs, spec)
	if f.onRun != nil {
		f.onRun(spec)
	}
	if f.err != nil {
		return -1, f.err
	}
	code := 0
	if len(f.codes) >= len(f.specs) {
		code = f.codes[len(f.specs)-1]
	}
	return code, nil
}

// testPipeline builds a Pipeline around a fakeRunner with quiet output.
func testPipeline(f *fakeRunner) *Pipeline {
	var out bytes.Buffer
	return NewPipeline(
		WithRunFunc(f.run),
		WithStdout(&out),
		WithPrinter(console.New(&out, true)),
	)
}

// testBook returns a minimal valid Book rooted in a temp directory.
func testBook(t *testing.T) Book {
	t.Helper()
	dir := t.TempDir()
	return Book{
		Sources:    []string{"docs/en/index.md", "docs/en/kernel.md"},
		Language:   LanguageEnglish,
		TargetName: "manual-en",
		BuildDir:   filepath.Join(dir, "build"),
		PublishDir: filepath.Join(dir, "site", "pdf"),
	}
}

func TestPipelineMarkdownToPDF(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	p := testPipeline(fake)
	book := testBook(t)

	if err := p.MarkdownToPDF(context.Background(), book); err != nil {
		t.Fatalf("MarkdownToPDF() error: %v", err)
	}

	if len(fake.specs) != 1 {
		t.Fatalf("runner invoked %d times, want 1", len(fake.specs))
	}
	spec := fake.specs[0]
	if spec.Program != PandocProgram {
		t.Errorf("program = %q, want %q", spec.Program, PandocProgram)
	}

	// The argument vector ends with -o <target> followed by the sources.
	n := len(spec.Args)
	if n < 4 {
		t.Fatalf("args too short: %v", spec.Args)
	}
	wantTarget := filepath.Join(book.BuildDir, "manual-en.pdf")
	if spec.Args[n-4] != "-o" || spec.Args[n-3] != wantTarget {
		t.Errorf("args tail = %v, want -o %s", spec.Args[n-4:], wantTarget)
	}
	if spec.Args[n-2] != book.Sources[0] || spec.Args[n-1] != book.Sources[1] {
		t.Errorf("sources not appended in order: %v", spec.Args[n-2:])
	}
}

func TestPipelineStageFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stage   func(p *Pipeline, b Book) error
		wantErr error
	}{
		{
			name:    "markdown to pdf",
			stage:   func(p *Pipeline, b Book) error { return p.MarkdownToPDF(context.Background(), b) },
			wantErr: ErrMarkdownToPDF,
		},
		{
			name:    "markdown to tex",
			stage:   func(p *Pipeline, b Book) error { return p.MarkdownToTeX(context.Background(), b) },
			wantErr: ErrMarkdownToTeX,
		},
		{
			name:    "tex to pdf",
			stage:   func(p *Pipeline, b Book) error { return p.TeXToPDF(context.Background(), b) },
			wantErr: ErrTeXToPDF,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeRunner{codes: []int{43}}
			p := testPipeline(fake)

			err := tt.stage(p, testBook(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("stage error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPipelineRunnerErrorPropagates(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{err: ErrProcessStart}
	p := testPipeline(fake)

	err := p.MarkdownToPDF(context.Background(), testBook(t))
	if !errors.Is(err, ErrProcessStart) {
		t.Errorf("MarkdownToPDF() error = %v, want ErrProcessStart", err)
	}
}

func TestPipelineBadSuppressionPattern(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	p := testPipeline(fake)
	book := testBook(t)
	book.Suppress = []string{`([unclosed`}

	err := p.MarkdownToPDF(context.Background(), book)
	if !errors.Is(err, ErrFilterPattern) {
		t.Errorf("MarkdownToPDF() error = %v, want ErrFilterPattern", err)
	}
	if len(fake.specs) != 0 {
		t.Errorf("runner invoked despite bad pattern")
	}
}

func TestPipelineBuildBook(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	book := Book{}
	fake.onRun = func(spec Spec) {
		// Simulate pandoc writing the target PDF.
		target := filepath.Join(book.BuildDir, book.TargetName+".pdf")
		_ = os.WriteFile(target, []byte("%PDF-1.5"), 0o644)
	}
	p := testPipeline(fake)
	book = testBook(t)

	if err := p.BuildBook(context.Background(), book, false); err != nil {
		t.Fatalf("BuildBook() error: %v", err)
	}

	published := filepath.Join(book.PublishDir, "manual-en.pdf")
	if _, err := os.Stat(published); err != nil {
		t.Errorf("published PDF missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(book.BuildDir, "manual-en.pdf")); !os.IsNotExist(err) {
		t.Errorf("PDF left behind in build dir (stat err = %v)", err)
	}
}

func TestPipelineBuildBookViaTeX(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	book := Book{}
	fake.onRun = func(spec Spec) {
		if spec.Program == TeXProgram {
			target := filepath.Join(book.BuildDir, book.TargetName+".pdf")
			_ = os.WriteFile(target, []byte("%PDF-1.5"), 0o644)
		}
	}
	p := testPipeline(fake)
	book = testBook(t)

	if err := p.BuildBook(context.Background(), book, true); err != nil {
		t.Fatalf("BuildBook() error: %v", err)
	}

	if len(fake.specs) != 2 {
		t.Fatalf("runner invoked %d times, want 2 (tex then pdf)", len(fake.specs))
	}
	if fake.specs[0].Program != PandocProgram {
		t.Errorf("first stage program = %q, want pandoc", fake.specs[0].Program)
	}
	if fake.specs[1].Program != TeXProgram {
		t.Errorf("second stage program = %q, want xelatex", fake.specs[1].Program)
	}
}

func TestPipelineBuildBookInvalid(t *testing.T) {
	t.Parallel()

	fake := &fakeRunner{}
	p := testPipeline(fake)

	err := p.BuildBook(context.Background(), Book{}, false)
	if !errors.Is(err, ErrNoSources) {
		t.Errorf("BuildBook() error = %v, want ErrNoSources", err)
	}
	if len(fake.specs) != 0 {
		t.Errorf("runner invoked for an invalid book")
	}
}
