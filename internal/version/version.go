// Package version holds build-time version information.
// Version is read from the VERSION file unless set via ldflags during build:
//
//	-X github.com/tacogips/xtinspect/internal/version.Version=x.y.z
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version information (set via ldflags during build)
var (
	Version   = strings.TrimSpace(embeddedVersion)
	GitCommit = "unknown"
	BuildDate = "unknown"
)
