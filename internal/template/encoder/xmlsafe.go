package encoder

import (
	"unicode/utf8"

	"github.com/tacogips/xtinspect/internal/template/model"
)

// XMLSafe reports whether every string m encodes survives an XML property
// list unchanged. Control characters other than tab and newline, carriage
// returns, and invalid UTF-8 are replaced or normalized by XML readers;
// such templates only round-trip through binary.
func XMLSafe(m model.TemplateMetadata) bool {
	if !xmlText(m.Kind.Raw) || !xmlText(m.Identifier) || !xmlText(m.Name) {
		return false
	}
	for _, k := range m.Ancestors {
		if !xmlText(k.Raw) {
			return false
		}
	}
	for _, opt := range m.Options {
		if !xmlText(opt.Identifier) || !xmlText(opt.Name) || !xmlText(string(opt.Type)) || !xmlText(opt.Default) {
			return false
		}
		for _, c := range opt.Choices {
			if !xmlText(c) {
				return false
			}
		}
	}
	return xmlNodes(m.FileStructure)
}

func xmlNodes(nodes []model.FileNode) bool {
	for _, n := range nodes {
		if !xmlText(n.Name) || !xmlNodes(n.Children) {
			return false
		}
	}
	return true
}

func xmlText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n':
		case r < 0x20 || r == '\r':
			return false
		case r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
			return false
		}
	}
	return true
}
