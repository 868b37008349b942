package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tidwall/jsonc"

	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/inventory"
)

// Environment variables that override the configuration file.
const (
	EnvRoots     = "XTINSPECT_ROOTS"
	EnvWorkers   = "XTINSPECT_WORKERS"
	EnvCacheSize = "XTINSPECT_CACHE_SIZE"
	EnvDebug     = "XTINSPECT_DEBUG"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
// Files may contain comments and trailing commas.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(path, err)
		}
		return nil, NewInvalidError(path, "failed to read configuration file", err)
	}

	// Fields absent from the file keep their default values.
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, NewInvalidError(path, "invalid JSON syntax", err)
	}

	mergeConfig(cfg, DefaultConfig())

	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := l.Load(path)
	if err != nil {
		if IsNotFound(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if config.Scan.Workers < 0 {
		return NewFieldError("scan.workers", "workers cannot be negative", nil)
	}
	if config.Scan.CacheSize < 0 {
		return NewFieldError("scan.cache_size", "cache size cannot be negative", nil)
	}
	name := config.Scan.DescriptorName
	if name == "" || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return NewFieldError("scan.descriptor_name",
			fmt.Sprintf("descriptor name must be a plain file name, got %q", name), nil)
	}
	for i, root := range config.Scan.Roots {
		if strings.TrimSpace(root) == "" {
			return NewFieldError(fmt.Sprintf("scan.roots[%d]", i), "root cannot be empty", nil)
		}
	}
	if _, err := codec.ParseFormat(config.Output.EncodeFormat); err != nil {
		return NewFieldError("output.encode_format", "unsupported format", err)
	}
	if _, err := inventory.ParseExportFormat(config.Output.ExportFormat); err != nil {
		return NewFieldError("output.export_format", "unsupported format", err)
	}
	return nil
}

// Validate validates the global configuration.
func Validate(config *Config) error {
	return NewLoader().Validate(config)
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment. Missing files are skipped and existing variables win.
func LoadDotEnv(paths ...string) error {
	var present []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return NewInvalidError(strings.Join(present, ","), "failed to load environment file", err)
	}
	return nil
}

// ApplyEnv overrides cfg with the XTINSPECT_* environment variables.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvRoots); ok && strings.TrimSpace(v) != "" {
		var roots []string
		for _, r := range filepath.SplitList(v) {
			if r = strings.TrimSpace(r); r != "" {
				roots = append(roots, r)
			}
		}
		cfg.Scan.Roots = roots
	}

	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return NewEnvError(EnvWorkers, "scan.workers", "not an integer", err)
		}
		cfg.Scan.Workers = n
	}

	if v, ok := os.LookupEnv(EnvCacheSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return NewEnvError(EnvCacheSize, "scan.cache_size", "not an integer", err)
		}
		cfg.Scan.CacheSize = n
	}

	if v, ok := os.LookupEnv(EnvDebug); ok {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return NewEnvError(EnvDebug, "output.debug", "not a boolean", err)
		}
		cfg.Output.Debug = on
	}

	return nil
}

// Save writes cfg as indented JSON, creating parent directories.
func Save(path string, cfg *Config) error {
	cleanPath := filepath.Clean(path)
	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewInvalidError(cleanPath, fmt.Sprintf("failed to create directory %s", dir), err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return NewInvalidError(cleanPath, "failed to marshal configuration", err)
	}

	if err := os.WriteFile(cleanPath, append(data, '\n'), 0644); err != nil {
		return NewInvalidError(cleanPath, "failed to write configuration", err)
	}
	return nil
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	// Scan
	if len(cfg.Scan.Roots) == 0 {
		cfg.Scan.Roots = defaults.Scan.Roots
	}
	if cfg.Scan.DescriptorName == "" {
		cfg.Scan.DescriptorName = defaults.Scan.DescriptorName
	}

	// Output
	if cfg.Output.EncodeFormat == "" {
		cfg.Output.EncodeFormat = defaults.Output.EncodeFormat
	}
	if cfg.Output.ExportFormat == "" {
		cfg.Output.ExportFormat = defaults.Output.ExportFormat
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}

// ExpandRoots expands every root with ExpandPath.
func ExpandRoots(roots []string) ([]string, error) {
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		expanded, err := ExpandPath(r)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}
