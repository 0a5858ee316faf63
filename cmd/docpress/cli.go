package main

import (
	"fmt"
)

// run dispatches the subcommand and returns the process exit code.
// The build command is the default when the first argument is not a
// known command.
func run(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	cmdArgs := args[1:]
	command := "build"
	if len(cmdArgs) > 0 && !isFlag(cmdArgs[0]) {
		command = cmdArgs[0]
		cmdArgs = cmdArgs[1:]
	}

	switch command {
	case "build":
		return runBuildCmd(cmdArgs, env)
	case "preview":
		return runPreviewCmd(cmdArgs, env)
	case "doctor":
		return runDoctorCmd(cmdArgs, env)
	case "version":
		fmt.Fprintf(env.Stdout, "docpress %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelpCmd(cmdArgs, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isFlag reports whether the argument is a flag rather than a command.
func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}

// runHelpCmd shows help for a specific command or the general usage.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
