// Package main provides the developer CLI for the anchor positioning engine.
//
// Usage:
//
//	anchor solve [file...]    Solve the scenarios in TOML or YAML files
//	anchor demo               Run the interactive terminal demo
//	anchor help               Show help
//
// Examples:
//
//	anchor solve testdata/scenarios.toml
//	anchor solve -v -s flip testdata/scenarios.yaml
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-anchor/internal/debug"
)

const version = "0.1.0"

const usage = `anchor - popup positioning engine tools

Usage:
  anchor <command> [options] [file...]

Commands:
  solve       Resolve placements for the scenarios in config files
  demo        Run an interactive terminal demo
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output (solve: print the style payload)
  -s name     Only solve the named scenario

Examples:
  anchor solve scenarios.toml             Solve every scenario in a file
  anchor solve -s flip scenarios.yaml     Solve one scenario
  anchor demo                             Scroll and resize around a tooltip
  ANCHOR_DEBUG=/tmp/anchor.log anchor demo

For more information, see https://github.com/grindlemire/go-anchor
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}
	defer debug.Close()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := runSolve(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "demo":
		if err := runDemo(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("anchor version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
