package docpress

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// maxLineSize bounds a single output line from the child. TeX engines
// occasionally emit very long unbroken lines (file lists, overfull box
// reports), well past bufio.Scanner's 64KB default.
const maxLineSize = 1024 * 1024

// Spec describes one external command invocation. The program and
// argument list are treated as immutable once the Spec is constructed.
type Spec struct {
	Program string
	Args    []string
	Dir     string     // working directory, "" = current
	Env     []string   // environment, nil = inherit parent
	Filters *FilterSet // nil = no suppression
	Stdout  io.Writer  // console output, nil = os.Stdout
}

// streamLine is one line of child output tagged with its origin.
type streamLine struct {
	text string
	err  error
}

// Run executes the command described by spec to completion, merging its
// stdout and stderr into a single ordered console stream.
//
// Lines arriving on either stream are interleaved in delivery order,
// with per-stream ordering preserved. Each line is tested against the
// suppression filters (first match wins); matching lines are recorded
// instead of printed, everything else is printed trimmed of trailing
// whitespace. A line matching "Errors: N, Warnings: M" is rewritten to
// subtract the suppressed count and is followed by a full rewrite of
// the suppression log in spec.Dir. If no summary line appears, the log
// is never written. With a nil FilterSet neither suppression nor the
// summary rewrite takes place.
//
// The child's exit code is returned as-is; a non-zero code is not an
// error. The error return covers launch and pipe failures only. No
// timeout is imposed; cancelling ctx kills the child.
func Run(ctx context.Context, spec Spec) (int, error) {
	out := spec.Stdout
	if out == nil {
		out = os.Stdout
	}

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("creating stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return -1, fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("%w: %s: %v", ErrProcessStart, spec.Program, err)
	}

	// One reader goroutine per pipe feeding a shared channel. Both
	// pipes are drained concurrently so a child filling one stream
	// while we read the other cannot deadlock on the pipe buffer;
	// the consuming loop below stays single.
	lines := make(chan streamLine)
	var wg sync.WaitGroup
	wg.Add(2)
	go readLines(stdoutPipe, lines, &wg)
	go readLines(stderrPipe, lines, &wg)
	go func() {
		wg.Wait()
		close(lines)
	}()

	var suppressed []string
	var readErr error
	for line := range lines {
		if line.err != nil {
			if readErr == nil {
				readErr = line.err
			}
			continue
		}

		if spec.Filters.Match(line.text) {
			suppressed = append(suppressed, line.text)
			continue
		}

		text := line.text
		if spec.Filters.Len() > 0 {
			if rewritten, ok := rewriteSummary(text, len(suppressed)); ok {
				text = rewritten
				if err := writeSuppressedLog(spec.Dir, suppressed); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		}

		fmt.Fprintln(out, strings.TrimRight(text, " \t\r\n"))
	}

	code := 0
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return -1, fmt.Errorf("waiting for %s: %w", spec.Program, err)
		}
		code = exitErr.ExitCode()
	}

	if readErr != nil {
		return code, fmt.Errorf("reading %s output: %w", spec.Program, readErr)
	}
	return code, nil
}

// readLines scans r line by line into ch until EOF or read failure.
func readLines(r io.Reader, ch chan<- streamLine, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		ch <- streamLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		ch <- streamLine{err: err}
	}
}
