package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	rtdebug "runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Print the xtinspect version, the Go toolchain it was built with, and the
property list codec it links against.

Examples:
  xtinspect version
  xtinspect version --short
  xtinspect version --json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print as JSON")
}

// plistModule is the codec dependency reported by the version command.
const plistModule = "howett.net/plist"

// VersionInfo is the output of the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Platform  string `json:"platform"`
	Codec     string `json:"codec,omitempty"`
}

func currentVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		Commit:    GitCommit,
		BuildDate: BuildDate,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := rtdebug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			if dep.Path == plistModule {
				info.Codec = dep.Path + " " + dep.Version
				break
			}
		}
	}
	return info
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := currentVersionInfo()

	switch {
	case versionShort:
		fmt.Fprintln(stdout, info.Version)
		return nil
	case versionJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}

	fmt.Fprintf(stdout, "xtinspect %s\n", paint(headerStyle, info.Version))
	printField("Go", info.GoVersion)
	printField("Commit", info.Commit)
	printField("Built", info.BuildDate)
	printField("Platform", info.Platform)
	if info.Codec != "" {
		printField("Codec", info.Codec)
	}
	return nil
}
