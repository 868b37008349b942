// Package kind classifies template kind identifiers.
//
// Known identifiers come from a static table and carry precomputed
// attributes (category, base and utility flags, display name). Identifiers
// missing from the table classify as Unknown and keep their raw value, so
// nothing authored in a bundle is ever lost.
package kind

import "strings"

// Category is the broad purpose of a template.
type Category int

const (
	// CategoryProject is a project (or target) template.
	CategoryProject Category = iota
	// CategoryFile is a file template.
	CategoryFile
	// CategoryPackage is a package template.
	CategoryPackage
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryProject:
		return "project"
	case CategoryFile:
		return "file"
	case CategoryPackage:
		return "package"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name back to a Category.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "project":
		return CategoryProject, true
	case "file":
		return CategoryFile, true
	case "package":
		return CategoryPackage, true
	default:
		return 0, false
	}
}

// Kind is a classified kind identifier. The zero value is the unknown kind
// with an empty identifier.
type Kind struct {
	// ID is the closed enumeration value; Unknown for unseen identifiers.
	ID ID `json:"-" yaml:"-"`
	// Raw is the identifier exactly as authored.
	Raw string `json:"id" yaml:"id"`
}

// Classify returns the Kind for an identifier. It never fails.
func Classify(raw string) Kind {
	if id, ok := byRaw[raw]; ok {
		return Kind{ID: id, Raw: raw}
	}
	return Kind{ID: Unknown, Raw: raw}
}

// UnknownKind returns the unknown kind with no identifier.
func UnknownKind() Kind {
	return Kind{ID: Unknown}
}

// IsKnown reports whether the identifier is in the static table.
func (k Kind) IsKnown() bool {
	return k.ID != Unknown
}

// Category returns the category of the kind. For unknown identifiers the
// category is guessed from the identifier text.
func (k Kind) Category() Category {
	if k.IsKnown() {
		return table[k.ID].category
	}
	return guessCategory(k.Raw)
}

// IsBase reports whether the kind names a base template that other
// templates inherit from but that is not offered on its own.
func (k Kind) IsBase() bool {
	if k.IsKnown() {
		return table[k.ID].base
	}
	return strings.HasSuffix(strings.ToLower(k.Raw), "base")
}

// IsUtility reports whether the kind names a utility template (option
// choosers, language or platform selectors).
func (k Kind) IsUtility() bool {
	if k.IsKnown() {
		return table[k.ID].utility
	}
	return strings.Contains(strings.ToLower(k.Raw), "choice")
}

// DisplayName returns a human readable name for the kind.
func (k Kind) DisplayName() string {
	if k.IsKnown() {
		return table[k.ID].display
	}
	if k.Raw == "" {
		return "Unknown"
	}
	if i := strings.LastIndexByte(k.Raw, '.'); i >= 0 && i < len(k.Raw)-1 {
		return k.Raw[i+1:]
	}
	return k.Raw
}

// String returns the raw identifier, or "unknown" when it is empty.
func (k Kind) String() string {
	if k.Raw == "" {
		return "unknown"
	}
	return k.Raw
}

// All returns every known kind in table order.
func All() []Kind {
	kinds := make([]Kind, 0, len(table)-1)
	for id := Unknown + 1; int(id) < len(table); id++ {
		kinds = append(kinds, Kind{ID: id, Raw: table[id].raw})
	}
	return kinds
}

func guessCategory(raw string) Category {
	switch {
	case strings.Contains(raw, "Package") || strings.Contains(raw, "package"):
		return CategoryPackage
	case strings.Contains(raw, "File") || strings.Contains(raw, ".file"):
		return CategoryFile
	default:
		return CategoryProject
	}
}
