package config

// Config represents the global xtinspect configuration.
type Config struct {
	// Scan configuration for bundle discovery and decoding.
	Scan ScanConfig `json:"scan"`
	// Output configuration for display and logging.
	Output OutputConfig `json:"output"`
}

// ScanConfig represents scanner settings.
type ScanConfig struct {
	// Roots are the directories searched for template bundles. A leading
	// "~" is expanded to the home directory.
	Roots []string `json:"roots"`
	// DescriptorName is the file name that marks a bundle directory.
	DescriptorName string `json:"descriptor_name"`
	// Workers is the number of bundles decoded in parallel (0 = one per CPU).
	Workers int `json:"workers"`
	// CacheSize is the number of decoded descriptors kept between scans
	// (0 = no cache).
	CacheSize int `json:"cache_size"`
	// IncludeHidden includes dot-prefixed directories.
	IncludeHidden bool `json:"include_hidden"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
	// Debug enables debug logging.
	Debug bool `json:"debug"`
	// EncodeFormat is the property list format written by encode.
	EncodeFormat string `json:"encode_format"`
	// ExportFormat is the snapshot format written by export.
	ExportFormat string `json:"export_format"`
}
