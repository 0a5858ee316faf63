package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// testEnv returns an Environment capturing output, with an empty
// process environment.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Unix(0, 0) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
	}, &stdout, &stderr
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"docpress", "version"}, env); code != ExitSuccess {
		t.Fatalf("run(version) = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "docpress") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := run([]string{"docpress", "frobnicate"}, env); code != ExitUsage {
		t.Fatalf("run(frobnicate) = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
		code int
	}{
		{name: "general", args: []string{"docpress", "help"}, want: "Commands:", code: ExitSuccess},
		{name: "build", args: []string{"docpress", "help", "build"}, want: "docpress build", code: ExitSuccess},
		{name: "preview", args: []string{"docpress", "help", "preview"}, want: "docpress preview", code: ExitSuccess},
		{name: "doctor", args: []string{"docpress", "help", "doctor"}, want: "docpress doctor", code: ExitSuccess},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			if code := run(tt.args, env); code != tt.code {
				t.Fatalf("run(%v) = %d, want %d", tt.args, code, tt.code)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("help output missing %q:\n%s", tt.want, stdout.String())
			}
		})
	}
}

func TestRunHelpUnknownTopic(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if code := run([]string{"docpress", "help", "frobnicate"}, env); code != ExitUsage {
		t.Errorf("run(help frobnicate) = %d, want %d", code, ExitUsage)
	}
}

func TestIsFlag(t *testing.T) {
	t.Parallel()

	if !isFlag("--verbose") || !isFlag("-v") {
		t.Error("isFlag() = false for flags")
	}
	if isFlag("build") || isFlag("") {
		t.Error("isFlag() = true for non-flags")
	}
}
