// Package main provides the CLI entrypoint for tesseract-gen.
//
// tesseract-gen is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find html-annotated types
//   - Extracts an element definition per type, normalizing attribute keys
//   - Generates Node and Render methods built on the markup package
package main

import (
	"io"
	"os"

	"github.com/fatih/color"

	"tesseract/internal/cmd/root"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := root.NewCmdRoot()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(stderr, "✗ "+err.Error())
		return 1
	}

	return 0
}
