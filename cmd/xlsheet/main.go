// Package main is the entry point for xlsheet.
package main

import (
	"fmt"
	"os"

	"github.com/dshills/xlsheet/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date}, nil)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
