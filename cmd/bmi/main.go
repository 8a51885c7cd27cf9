// Package main is the entry point of the bmi command line.
//
// Build-time variables (version, commit, date) are injected via ldflags and
// default to "dev", "none" and "unknown".
package main

import (
	"github.com/iliyamo/bmi-calculator/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand())
}
