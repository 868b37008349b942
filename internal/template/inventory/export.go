package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/xtinspect/internal/template/model"
)

// ExportFormat selects the snapshot encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
	ExportCBOR ExportFormat = "cbor"
)

// ParseExportFormat validates a format name.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(s); f {
	case ExportJSON, ExportYAML, ExportCBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (expected json, yaml, or cbor)", s)
	}
}

// Snapshot is the exported view of an Inventory.
type Snapshot struct {
	TotalTemplates    int                      `json:"total_templates" yaml:"total_templates"`
	TotalCombinations int                      `json:"total_combinations" yaml:"total_combinations"`
	Fingerprint       string                   `json:"fingerprint" yaml:"fingerprint"`
	Templates         []model.TemplateMetadata `json:"templates" yaml:"templates"`
	Skipped           []string                 `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Snapshot returns the exported view.
func (inv *Inventory) Snapshot() Snapshot {
	snap := Snapshot{
		TotalTemplates:    inv.TotalTemplates(),
		TotalCombinations: inv.TotalCombinations(),
		Fingerprint:       inv.Fingerprint(),
		Templates:         inv.Templates(),
	}
	for _, d := range inv.diagnostics {
		snap.Skipped = append(snap.Skipped, d.Error())
	}
	return snap
}

// Export writes the snapshot to w.
func (inv *Inventory) Export(w io.Writer, format ExportFormat) error {
	snap := inv.Snapshot()

	switch format {
	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case ExportYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case ExportCBOR:
		data, err := cbor.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
