package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	docpress "github.com/docpress/docpress"
	"github.com/docpress/docpress/internal/hints"
	"github.com/docpress/docpress/internal/manifest"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Pandoc   toolInfo   `json:"pandoc"`
	XeLaTeX  toolInfo   `json:"xelatex"`
	Manifest configInfo `json:"manifest"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external tool.
type toolInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// configInfo holds manifest check results.
type configInfo struct {
	Found     bool     `json:"found"`
	Path      string   `json:"path,omitempty"`
	Sources   int      `json:"sources,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS               string `json:"os"`
	Arch             string `json:"arch"`
	BuildDirWritable bool   `json:"build_dir_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	configPath := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--json":
			jsonOutput = true
		case "--config", "-c":
			if i+1 < len(args) {
				i++
				configPath = args[i]
			}
		}
	}

	result := runDoctor(manifest.Find(configPath))

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(manifestPath string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	checkTool(&result.Pandoc, docpress.PandocProgram, result,
		"pandoc not found."+hints.ForPandocNotFound())
	checkTool(&result.XeLaTeX, docpress.TeXProgram, result,
		"xelatex not found."+hints.ForTeXNotFound())
	checkManifest(manifestPath, result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTool locates an external tool and captures its version line.
func checkTool(info *toolInfo, program string, result *doctorResult, missingMsg string) {
	path, err := exec.LookPath(program)
	if err != nil {
		result.Errors = append(result.Errors, missingMsg)
		return
	}

	info.Found = true
	info.Path = path

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from LookPath
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s --version failed: %v", program, err))
		return
	}
	if line, _, ok := strings.Cut(string(out), "\n"); ok {
		info.Version = strings.TrimSpace(line)
	}
}

// checkManifest verifies the manifest parses and summarizes it.
func checkManifest(path string, result *doctorResult) {
	m, err := manifest.Load(path)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		return
	}

	result.Manifest.Found = true
	result.Manifest.Path = path
	result.Manifest.Sources = len(m.Sources)
	for _, lang := range m.Languages {
		result.Manifest.Languages = append(result.Manifest.Languages, lang.Code)
	}

	for _, dir := range []string{m.Fonts.MainDir, m.Fonts.MonoDir, m.Fonts.SansDir} {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			result.Warnings = append(result.Warnings, "font directory missing: "+dir)
		}
	}
}

// checkSystem verifies the build directory is writable.
func checkSystem(result *doctorResult) {
	f, err := os.CreateTemp(".", ".docpress-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, "working directory not writable: "+err.Error())
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.BuildDirWritable = true
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(env *Environment, result *doctorResult) {
	w := env.Stdout

	fmt.Fprintf(w, "docpress doctor (%s/%s)\n\n", result.System.OS, result.System.Arch)
	printToolLine(w, "pandoc", result.Pandoc)
	printToolLine(w, "xelatex", result.XeLaTeX)

	if result.Manifest.Found {
		fmt.Fprintf(w, "  manifest:  %s (%d sources, languages: %s)\n",
			result.Manifest.Path, result.Manifest.Sources,
			strings.Join(result.Manifest.Languages, ", "))
	} else {
		fmt.Fprintln(w, "  manifest:  not loaded")
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "  error: %s\n", errMsg)
	}

	fmt.Fprintf(w, "\nStatus: %s\n", result.Status)
}

func printToolLine(w io.Writer, name string, info toolInfo) {
	if info.Found {
		fmt.Fprintf(w, "  %-9s %s (%s)\n", name+":", info.Path, info.Version)
	} else {
		fmt.Fprintf(w, "  %-9s not found\n", name+":")
	}
}
