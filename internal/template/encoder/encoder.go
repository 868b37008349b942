// Package encoder rebuilds descriptor documents from TemplateMetadata.
//
// Encode is the inverse of decoder.Decode on every modeled field. Keys the
// model does not represent are not reproduced.
package encoder

import (
	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// Encode builds the document for m. It never fails.
func Encode(m model.TemplateMetadata) codec.Document {
	root := make(map[string]any)

	if m.Kind.Raw != "" {
		root[model.KeyKind] = m.Kind.Raw
	}
	if m.Identifier != "" {
		root[model.KeyIdentifier] = m.Identifier
	}
	if m.Name != "" {
		root[model.KeyName] = m.Name
	}

	if m.Ancestors != nil {
		ancestors := make([]any, 0, len(m.Ancestors))
		for _, k := range m.Ancestors {
			if k.Raw == "" {
				continue
			}
			ancestors = append(ancestors, k.Raw)
		}
		root[model.KeyAncestors] = ancestors
	}

	if len(m.Options) > 0 {
		options := make([]any, 0, len(m.Options))
		for _, opt := range m.Options {
			options = append(options, encodeOption(opt))
		}
		root[model.KeyOptions] = options
	}

	if m.FileStructure != nil {
		root[model.KeyFileStructure] = encodeNodes(m.FileStructure)
	}

	doc := codec.Document{Root: root, Format: codec.FormatXML}
	if raw, err := codec.Marshal(doc, codec.FormatXML); err == nil {
		doc.Raw = string(raw)
	}
	return doc
}

// EncodeBytes encodes m and renders it in the given format.
func EncodeBytes(m model.TemplateMetadata, format codec.Format) ([]byte, error) {
	doc := Encode(m)
	if format == codec.FormatXML && doc.Raw != "" {
		return []byte(doc.Raw), nil
	}
	return codec.Marshal(doc, format)
}

func encodeOption(opt model.TemplateOption) map[string]any {
	dict := make(map[string]any)
	if opt.Identifier != "" {
		dict[model.KeyOptionIdentifier] = opt.Identifier
	}
	if opt.Name != "" {
		dict[model.KeyOptionName] = opt.Name
	}
	if opt.Type != "" {
		dict[model.KeyOptionType] = string(opt.Type)
	}
	if opt.Default != "" {
		dict[model.KeyOptionDefault] = opt.Default
	}
	if opt.Choices != nil {
		values := make([]any, len(opt.Choices))
		for i, c := range opt.Choices {
			values[i] = c
		}
		dict[model.KeyOptionValues] = values
	}
	return dict
}

func encodeNodes(nodes []model.FileNode) []any {
	list := make([]any, 0, len(nodes))
	for _, n := range nodes {
		dict := map[string]any{model.KeyNodeName: n.Name}
		if n.IsDirectory {
			dict[model.KeyNodeChildren] = encodeNodes(n.Children)
		}
		list = append(list, dict)
	}
	return list
}
