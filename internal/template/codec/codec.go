// Package codec adapts the property-list library to the descriptor documents
// of template bundles. It only parses and renders; interpreting the keys is
// the decoder's job.
package codec

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// Format is the serialization of a descriptor document.
type Format int

const (
	// FormatXML is the XML property-list format.
	FormatXML Format = iota
	// FormatBinary is the binary property-list format.
	FormatBinary
	// FormatOpenStep is the OpenStep text format.
	FormatOpenStep
	// FormatGNUStep is the GNUStep text format.
	FormatGNUStep
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatBinary:
		return "binary"
	case FormatOpenStep:
		return "openstep"
	case FormatGNUStep:
		return "gnustep"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name back to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "xml", "":
		return FormatXML, nil
	case "binary":
		return FormatBinary, nil
	case "openstep":
		return FormatOpenStep, nil
	case "gnustep":
		return FormatGNUStep, nil
	default:
		return 0, fmt.Errorf("unknown document format: %q", s)
	}
}

// Document is a parsed descriptor.
type Document struct {
	// Root is the top-level dictionary.
	Root map[string]any
	// Raw is the document text. Binary documents are rendered as XML.
	Raw string
	// Format is the serialization the document was read from.
	Format Format
}

// Parse parses descriptor bytes. The only failure is a *SyntaxError: the
// bytes are not a property list, or its root is not a dictionary.
func Parse(data []byte) (Document, error) {
	var root any
	pf, err := plist.Unmarshal(data, &root)
	if err != nil {
		return Document{}, NewSyntaxError("", "not a property list", err)
	}

	dict, ok := root.(map[string]any)
	if !ok {
		return Document{}, NewSyntaxError("", fmt.Sprintf("root is %T, expected dictionary", root), nil)
	}

	doc := Document{
		Root:   dict,
		Format: fromPlistFormat(pf),
		Raw:    string(data),
	}

	if doc.Format == FormatBinary {
		rendered, err := plist.MarshalIndent(dict, plist.XMLFormat, "\t")
		if err != nil {
			doc.Raw = ""
		} else {
			doc.Raw = string(rendered)
		}
	}

	return doc, nil
}

// ReadFile reads and parses a descriptor file. Read failures are returned
// wrapped; parse failures are a *SyntaxError carrying the path.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		if synErr, ok := err.(*SyntaxError); ok {
			synErr.Path = path
		}
		return Document{}, err
	}
	return doc, nil
}

// Marshal renders the document root in the given format. XML output is
// tab-indented.
func Marshal(doc Document, format Format) ([]byte, error) {
	root := doc.Root
	if root == nil {
		root = map[string]any{}
	}

	pf := toPlistFormat(format)
	if pf == plist.XMLFormat || pf == plist.OpenStepFormat || pf == plist.GNUStepFormat {
		return plist.MarshalIndent(root, pf, "\t")
	}
	return plist.Marshal(root, pf)
}

func fromPlistFormat(pf int) Format {
	switch pf {
	case plist.BinaryFormat:
		return FormatBinary
	case plist.OpenStepFormat:
		return FormatOpenStep
	case plist.GNUStepFormat:
		return FormatGNUStep
	default:
		return FormatXML
	}
}

func toPlistFormat(f Format) int {
	switch f {
	case FormatBinary:
		return plist.BinaryFormat
	case FormatOpenStep:
		return plist.OpenStepFormat
	case FormatGNUStep:
		return plist.GNUStepFormat
	default:
		return plist.XMLFormat
	}
}
