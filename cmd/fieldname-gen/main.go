// Package main provides the CLI entrypoint for fieldname-gen.
//
// fieldname-gen is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find the selected structs
//   - Derives a canonical tag for every field type
//   - Generates shared and exclusive tagged unions over the distinct tags
//   - Generates Field and FieldMut methods looking fields up by name
package main

import (
	"fmt"
	"os"

	"fieldname-generator/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
