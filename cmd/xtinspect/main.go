package main

import (
	"github.com/tacogips/xtinspect/internal/cli"
)

// Version information (set via ldflags during build). Empty values keep
// the defaults from the version package.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

func main() {
	// Set version info from build-time variables
	if version != "" {
		cli.Version = version
	}
	if gitCommit != "" {
		cli.GitCommit = gitCommit
	}
	if buildDate != "" {
		cli.BuildDate = buildDate
	}

	// Execute the root command
	cli.Execute()
}
