package docpress

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docpress/docpress/internal/console"
	"github.com/docpress/docpress/internal/fileutil"
)

// RunFunc executes one external command; it matches Run and exists so
// tests can substitute a fake without spawning subprocesses.
type RunFunc func(ctx context.Context, spec Spec) (int, error)

// Pipeline drives the conversion stages for a Book. Stages run
// sequentially; the first failure stops the build.
type Pipeline struct {
	run     RunFunc
	printer *console.Printer
	stdout  io.Writer // console stream for child output
	env     []string  // child environment, nil = inherit
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRunFunc substitutes the command runner (used by tests).
func WithRunFunc(run RunFunc) PipelineOption {
	return func(p *Pipeline) { p.run = run }
}

// WithPrinter sets the status printer.
func WithPrinter(printer *console.Printer) PipelineOption {
	return func(p *Pipeline) { p.printer = printer }
}

// WithStdout redirects child process output.
func WithStdout(w io.Writer) PipelineOption {
	return func(p *Pipeline) { p.stdout = w }
}

// WithEnv sets the environment passed to child processes.
func WithEnv(env []string) PipelineOption {
	return func(p *Pipeline) { p.env = env }
}

// NewPipeline creates a Pipeline with default configuration: the real
// runner, colored output to stdout.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		run:    Run,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.printer == nil {
		p.printer = console.New(p.stdout, false)
	}
	return p
}

// MarkdownToPDF converts the Book's sources straight to a PDF in the
// build directory. Pandoc drives xelatex internally, so this is the
// normal single-stage path.
func (p *Pipeline) MarkdownToPDF(ctx context.Context, b Book) error {
	target := filepath.Join(b.buildDir(), b.TargetName+".pdf")

	if err := p.convert(ctx, b, target, ErrMarkdownToPDF); err != nil {
		return err
	}

	p.printer.Success("Markdown -> PDF Done")
	return nil
}

// MarkdownToTeX converts the Book's sources to a standalone TeX file in
// the build directory, for inspecting the generated LaTeX.
func (p *Pipeline) MarkdownToTeX(ctx context.Context, b Book) error {
	target := filepath.Join(b.buildDir(), b.TargetName+".tex")

	if err := p.convert(ctx, b, target, ErrMarkdownToTeX); err != nil {
		return err
	}

	p.printer.Success("Markdown -> TeX Done")
	return nil
}

// TeXToPDF typesets the Book's generated TeX file with the TeX engine.
func (p *Pipeline) TeXToPDF(ctx context.Context, b Book) error {
	tex := filepath.Join(b.buildDir(), b.TargetName+".tex")
	args := []string{"--shell-escape", "-output-directory=" + b.buildDir(), tex}

	p.printer.Info("%s %s", TeXProgram, strings.Join(args, " "))

	code, err := p.exec(ctx, b, TeXProgram, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTeXToPDF, err)
	}
	if code != 0 {
		p.printer.Error("E: tex2pdf failed")
		return fmt.Errorf("%w: exit code %d", ErrTeXToPDF, code)
	}

	p.printer.Success("TeX -> PDF Done")
	return nil
}

// BuildBook runs the full build for one Book: validate, ensure the
// build directory, convert, and move the finished PDF to the publish
// directory. With viaTeX the two-stage Markdown→TeX→PDF path is used.
func (p *Pipeline) BuildBook(ctx context.Context, b Book, viaTeX bool) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if b.Language == LanguageRussian {
		p.printer.Info("build Russian User Manual")
	} else {
		p.printer.Info("build English User Manual")
	}

	if err := fileutil.EnsureDir(b.buildDir()); err != nil {
		return err
	}

	if viaTeX {
		if err := p.MarkdownToTeX(ctx, b); err != nil {
			return err
		}
		if err := p.TeXToPDF(ctx, b); err != nil {
			return err
		}
	} else {
		if err := p.MarkdownToPDF(ctx, b); err != nil {
			return err
		}
	}

	pdf := filepath.Join(b.buildDir(), b.TargetName+".pdf")
	if err := fileutil.MoveFile(pdf, b.publishDir()); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.printer.Action("published %s", filepath.Join(b.publishDir(), b.TargetName+".pdf"))
	return nil
}

// convert runs pandoc with the Book's option vector and target output,
// mapping a non-zero exit to the given stage error.
func (p *Pipeline) convert(ctx context.Context, b Book, target string, stageErr error) error {
	args := append(PandocArgs(b), "-o", target)
	args = append(args, b.Sources...)

	code, err := p.exec(ctx, b, PandocProgram, args)
	if err != nil {
		return fmt.Errorf("%w: %w", stageErr, err)
	}
	if code != 0 {
		p.printer.Error("E: %s", stageErr)
		return fmt.Errorf("%w: exit code %d", stageErr, code)
	}
	return nil
}

// exec runs one external command with the Book's suppression filters.
func (p *Pipeline) exec(ctx context.Context, b Book, program string, args []string) (int, error) {
	filters, err := CompileFilters(b.Suppress)
	if err != nil {
		return -1, err
	}

	return p.run(ctx, Spec{
		Program: program,
		Args:    args,
		Env:     p.env,
		Filters: filters,
		Stdout:  p.stdout,
	})
}
