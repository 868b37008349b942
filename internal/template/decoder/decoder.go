// Package decoder maps descriptor documents onto TemplateMetadata.
//
// Decoding never fails. Vendor bundles are heterogeneous, so every field
// with an unexpected shape is replaced by a safe default (empty string,
// empty list, unknown kind) and reported as an Anomaly instead of aborting
// the template. Decoding has no side effects.
package decoder

import (
	"fmt"

	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// MaxTreeDepth bounds file-structure recursion.
const MaxTreeDepth = 64

// Anomaly describes a recognized field that had an unexpected shape and was
// replaced by a default.
type Anomaly struct {
	// Field is the document path of the field, e.g. "Options[2].Default".
	Field string
	// Reason is the human-readable description.
	Reason string
}

// String returns "field: reason".
func (a Anomaly) String() string {
	return a.Field + ": " + a.Reason
}

// Decode decodes one descriptor document of the bundle at bundlePath.
func Decode(doc codec.Document, bundlePath string) model.TemplateMetadata {
	m, _ := DecodeWithReport(doc, bundlePath)
	return m
}

// DecodeWithReport is Decode that also returns the anomalies recovered from.
func DecodeWithReport(doc codec.Document, bundlePath string) (model.TemplateMetadata, []Anomaly) {
	s := &state{}
	root := doc.Root

	m := model.TemplateMetadata{
		Kind:           s.kind(root),
		Identifier:     s.optionalString(root, model.KeyIdentifier, model.KeyIdentifier),
		Name:           s.optionalString(root, model.KeyName, model.KeyName),
		Path:           bundlePath,
		Ancestors:      s.ancestors(root),
		Options:        s.options(root),
		FileStructure:  s.fileStructure(root),
		RawContent:     doc.Raw,
		RawContentType: doc.Format.String(),
	}
	m.TotalCombinations = model.Combinations(m.Options)

	return m, s.anomalies
}

type state struct {
	anomalies []Anomaly
}

func (s *state) note(field, format string, args ...any) {
	s.anomalies = append(s.anomalies, Anomaly{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (s *state) kind(root map[string]any) kind.Kind {
	v, ok := root[model.KeyKind]
	if !ok {
		return kind.UnknownKind()
	}
	raw, ok := v.(string)
	if !ok {
		s.note(model.KeyKind, "expected string, got %T", v)
		return kind.UnknownKind()
	}
	return kind.Classify(raw)
}

// optionalString reads a string-valued key. Absent keys and wrong types
// both yield "".
func (s *state) optionalString(dict map[string]any, key, field string) string {
	v, ok := dict[key]
	if !ok {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		s.note(field, "expected string, got %T", v)
		return ""
	}
	return str
}

func (s *state) ancestors(root map[string]any) []kind.Kind {
	v, ok := root[model.KeyAncestors]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		s.note(model.KeyAncestors, "expected array, got %T", v)
		return nil
	}

	ancestors := make([]kind.Kind, 0, len(list))
	for i, item := range list {
		raw, ok := item.(string)
		if !ok || raw == "" {
			s.note(fmt.Sprintf("%s[%d]", model.KeyAncestors, i), "expected non-empty string, got %T", item)
			continue
		}
		ancestors = append(ancestors, kind.Classify(raw))
	}
	return ancestors
}

func (s *state) options(root map[string]any) []model.TemplateOption {
	options := []model.TemplateOption{}

	v, ok := root[model.KeyOptions]
	if !ok {
		return options
	}
	list, ok := v.([]any)
	if !ok {
		s.note(model.KeyOptions, "expected array, got %T", v)
		return options
	}

	for i, item := range list {
		field := fmt.Sprintf("%s[%d]", model.KeyOptions, i)
		dict, ok := item.(map[string]any)
		if !ok {
			s.note(field, "expected dictionary, got %T", item)
			continue
		}
		options = append(options, s.option(dict, field))
	}
	return options
}

func (s *state) option(dict map[string]any, field string) model.TemplateOption {
	opt := model.TemplateOption{
		Identifier: s.optionalString(dict, model.KeyOptionIdentifier, field+"."+model.KeyOptionIdentifier),
		Name:       s.optionalString(dict, model.KeyOptionName, field+"."+model.KeyOptionName),
		Type:       model.OptionType(s.optionalString(dict, model.KeyOptionType, field+"."+model.KeyOptionType)),
	}

	if v, ok := dict[model.KeyOptionDefault]; ok {
		str, ok := stringify(v)
		if !ok {
			s.note(field+"."+model.KeyOptionDefault, "cannot convert %T to string", v)
		}
		opt.Default = str
	}

	if opt.Type.IsEnumerable() {
		opt.Choices = s.choices(dict, field+"."+model.KeyOptionValues)
	}
	return opt
}

func (s *state) choices(dict map[string]any, field string) []string {
	v, ok := dict[model.KeyOptionValues]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		s.note(field, "expected array, got %T", v)
		return nil
	}

	choices := make([]string, 0, len(list))
	for i, item := range list {
		str, ok := stringify(item)
		if !ok {
			s.note(fmt.Sprintf("%s[%d]", field, i), "cannot convert %T to string", item)
			continue
		}
		choices = append(choices, str)
	}
	return choices
}
