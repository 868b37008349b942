package model

// Special file and directory names used by template bundles.
const (
	// DescriptorFile is the descriptor document name in a bundle directory.
	DescriptorFile = "TemplateInfo.plist"
	// BundleExtension is the conventional suffix of bundle directories.
	BundleExtension = ".xctemplate"
)

// OptionType is the type tag of a template option.
type OptionType string

const (
	// OptionTypeText is a free-form text field.
	OptionTypeText OptionType = "text"
	// OptionTypeStatic is a read-only value shown to the user.
	OptionTypeStatic OptionType = "static"
	// OptionTypeCheckbox is a boolean toggle.
	OptionTypeCheckbox OptionType = "checkbox"
	// OptionTypePopup is a single choice from a fixed list.
	OptionTypePopup OptionType = "popup"
	// OptionTypeCombo is a choice from a list that also accepts free text.
	OptionTypeCombo OptionType = "combo"
	// OptionTypeButtons is a single choice rendered as segmented buttons.
	OptionTypeButtons OptionType = "buttons"
	// OptionTypeClass is a class name picker.
	OptionTypeClass OptionType = "class"
)

// IsKnown reports whether the type tag is part of the known vocabulary.
func (t OptionType) IsKnown() bool {
	switch t {
	case OptionTypeText, OptionTypeStatic, OptionTypeCheckbox,
		OptionTypePopup, OptionTypeCombo, OptionTypeButtons, OptionTypeClass:
		return true
	default:
		return false
	}
}

// IsEnumerable reports whether options of this type carry a choice list.
func (t OptionType) IsEnumerable() bool {
	switch t {
	case OptionTypePopup, OptionTypeCombo, OptionTypeButtons:
		return true
	default:
		return false
	}
}

// TemplateOption is a user-configurable parameter of a template.
type TemplateOption struct {
	// Identifier is the option identifier used in substitutions.
	Identifier string `json:"identifier" yaml:"identifier"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Type is the type tag, preserved verbatim even when unknown.
	Type OptionType `json:"type" yaml:"type"`
	// Default is the default value normalized to a string.
	Default string `json:"default" yaml:"default"`
	// Choices is the ordered choice list. Nil for non-enumerable types.
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// FileNode is one entry of a bundle's file structure.
type FileNode struct {
	// Name is the entry name.
	Name string `json:"name" yaml:"name"`
	// Path is the '/'-joined chain of ancestor names and Name.
	Path string `json:"path" yaml:"path"`
	// IsDirectory reports whether the entry is a directory.
	IsDirectory bool `json:"is_directory" yaml:"is_directory"`
	// Children are the directory entries in order. Always empty for files.
	Children []FileNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of that node.
func (n FileNode) Walk(fn func(FileNode) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// CountNodes returns the number of directories and files in a forest.
func CountNodes(nodes []FileNode) (dirs, files int) {
	for _, root := range nodes {
		root.Walk(func(n FileNode) bool {
			if n.IsDirectory {
				dirs++
			} else {
				files++
			}
			return true
		})
	}
	return dirs, files
}

// JoinPath joins a parent path and a child name the way FileNode paths are
// built.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
