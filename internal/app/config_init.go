package app

import (
	"os"
	"path/filepath"

	"github.com/tacogips/xtinspect/internal/config"
	"github.com/tacogips/xtinspect/internal/debug"
)

// LoadConfigOptions contains options for configuration loading.
type LoadConfigOptions struct {
	// Path is the configuration file. Empty means the default path.
	Path string
	// EnvFiles are dotenv files loaded before environment overrides apply.
	// Missing files are skipped.
	EnvFiles []string
}

// LoadConfig loads the configuration file, applies XTINSPECT_* environment
// overrides, and validates the result. A missing file yields the defaults.
func LoadConfig(opts LoadConfigOptions) (*config.Config, error) {
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigPath()
	}
	debug.DebugValue("[app] Config path", path)

	if err := config.LoadDotEnv(opts.EnvFiles...); err != nil {
		return nil, NewConfigLoadError("failed to load environment files", err)
	}

	cfg, err := config.NewLoader().LoadOrDefault(path)
	if err != nil {
		return nil, NewConfigLoadError("failed to load configuration", err)
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, NewConfigLoadError("invalid environment override", err)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, NewConfigLoadError("invalid configuration", err)
	}

	debug.DebugJSON("[app] Effective config", cfg)
	return cfg, nil
}

// InitConfigOptions contains options for configuration initialization.
type InitConfigOptions struct {
	// Path is the file to create. Empty means the default path.
	Path string
	// Force overwrites an existing file.
	Force bool
}

// InitConfig writes the default configuration and returns its path.
func InitConfig(opts InitConfigOptions) (string, error) {
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return "", NewValidationError("cannot determine configuration path (no home directory)", nil)
	}
	path = filepath.Clean(path)

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return "", NewValidationError(path+" exists but is a directory", nil)
		}
		if !opts.Force {
			return "", NewValidationError("configuration already exists at "+path+" (use --force to overwrite)", nil)
		}
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return "", NewConfigLoadError("failed to write configuration", err)
	}
	debug.Debug("[app] Wrote default configuration to %s", path)
	return path, nil
}
