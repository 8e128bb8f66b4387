// Package main is the entry point for the keybind tool.
package main

import (
	"os"

	"github.com/dshills/keybind/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	return cli.Execute(info, os.Args[1:])
}
