package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/xtinspect/internal/template/model"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Roots:          DefaultRoots(),
			DescriptorName: model.DescriptorFile,
			Workers:        0,
			CacheSize:      256,
			IncludeHidden:  false,
		},
		Output: OutputConfig{
			Color:        true,
			Quiet:        false,
			Debug:        false,
			EncodeFormat: "xml",
			ExportFormat: "json",
		},
	}
}

// DefaultRoots returns the template directories of a standard Xcode
// installation plus the per-user template directory.
func DefaultRoots() []string {
	const developer = "/Applications/Xcode.app/Contents/Developer"
	return []string{
		filepath.Join(developer, "Library", "Xcode", "Templates"),
		filepath.Join(developer, "Platforms", "iPhoneOS.platform", "Developer", "Library", "Xcode", "Templates"),
		filepath.Join(developer, "Platforms", "MacOSX.platform", "Developer", "Library", "Xcode", "Templates"),
		"~/Library/Developer/Xcode/Templates",
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "xtinspect", "config.json")
}
