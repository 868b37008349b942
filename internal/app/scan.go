package app

import (
	"context"

	"github.com/tacogips/xtinspect/internal/config"
	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/scanner"
)

// ScanOptions contains options for building an inventory.
type ScanOptions struct {
	// Config supplies scanner settings. Nil means the defaults.
	Config *config.Config
	// Roots replaces the configured roots when non-empty.
	Roots []string
}

// NewScanner creates a scanner from the scan section of cfg.
func NewScanner(cfg *config.Config) (*scanner.Scanner, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s, err := scanner.New(scanner.Options{
		DescriptorName: cfg.Scan.DescriptorName,
		Workers:        cfg.Scan.Workers,
		CacheSize:      cfg.Scan.CacheSize,
		IncludeHidden:  cfg.Scan.IncludeHidden,
	})
	if err != nil {
		return nil, NewScanError("failed to create scanner", err)
	}
	return s, nil
}

// ScanTemplates scans the configured roots and returns the inventory.
func ScanTemplates(ctx context.Context, opts ScanOptions) (*inventory.Inventory, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	expanded, err := scanRoots(cfg, opts.Roots)
	if err != nil {
		return nil, err
	}

	s, err := NewScanner(cfg)
	if err != nil {
		return nil, err
	}

	inv, err := s.Scan(ctx, expanded)
	if err != nil {
		return nil, NewScanError("scan interrupted", err)
	}

	for _, d := range inv.Diagnostics() {
		debug.Debug("[app] Skipped: %v", d)
	}
	return inv, nil
}

// scanRoots returns override, or the configured roots when override is
// empty, with ~ and relative paths expanded.
func scanRoots(cfg *config.Config, override []string) ([]string, error) {
	roots := cfg.Scan.Roots
	if len(override) > 0 {
		roots = override
	}
	expanded, err := config.ExpandRoots(roots)
	if err != nil {
		return nil, NewScanError("failed to resolve scan roots", err)
	}
	return expanded, nil
}
