// Package main provides the entry point for the acrodefs CLI tool.
package main

import (
	"os"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/cli"
)

// Version information populated at build time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
