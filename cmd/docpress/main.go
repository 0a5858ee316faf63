package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply and the
	// program continues safely.
	if isVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args, DefaultEnv()))
}

// isVerbose pre-scans argv for the verbose flag before full parsing.
func isVerbose(args []string) bool {
	for _, arg := range args[1:] {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
