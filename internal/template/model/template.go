package model

import (
	"math"

	"github.com/tacogips/xtinspect/internal/template/kind"
)

// TemplateMetadata is one decoded template bundle.
type TemplateMetadata struct {
	// Kind is the classified kind of the template.
	Kind kind.Kind `json:"kind" yaml:"kind"`
	// Identifier is the template identifier, empty when not declared.
	Identifier string `json:"identifier" yaml:"identifier"`
	// Name is the display name, empty when not declared.
	Name string `json:"name" yaml:"name"`
	// Path is the bundle directory on disk.
	Path string `json:"path" yaml:"path"`
	// Ancestors are the declared ancestor kinds in declaration order.
	// Nil when the descriptor declares none.
	Ancestors []kind.Kind `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
	// Options are the template options in declaration order.
	Options []TemplateOption `json:"options" yaml:"options"`
	// FileStructure is the bundle's file tree. Nil when absent.
	FileStructure []FileNode `json:"file_structure,omitempty" yaml:"file_structure,omitempty"`
	// TotalCombinations is the number of distinct option combinations.
	TotalCombinations int `json:"total_combinations" yaml:"total_combinations"`
	// RawContent is the descriptor text, for display only.
	RawContent string `json:"-" yaml:"-"`
	// RawContentType names the descriptor encoding (xml, binary, ...).
	RawContentType string `json:"raw_content_type,omitempty" yaml:"raw_content_type,omitempty"`
}

// DisplayName returns the template name, falling back to the identifier
// and then the kind's display name.
func (m TemplateMetadata) DisplayName() string {
	switch {
	case m.Name != "":
		return m.Name
	case m.Identifier != "":
		return m.Identifier
	default:
		return m.Kind.DisplayName()
	}
}

// Combinations returns the product of max(1, len(Choices)) over options,
// or 1 when there are none. The result saturates at math.MaxInt.
func Combinations(options []TemplateOption) int {
	total := 1
	for _, opt := range options {
		n := len(opt.Choices)
		if n < 1 {
			continue
		}
		if total > math.MaxInt/n {
			return math.MaxInt
		}
		total *= n
	}
	return total
}
