package app

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// FindTemplate resolves a user query to one template. The query is tried as
// an identifier or kind, then as a bundle path, then as a bundle directory
// name with or without its extension, then as a display name.
func FindTemplate(inv *inventory.Inventory, query string) (*model.TemplateMetadata, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewValidationError("template query cannot be empty", nil)
	}

	if t, ok := inv.Lookup(query); ok {
		return t, nil
	}

	clean := filepath.Clean(query)
	base := strings.TrimSuffix(filepath.Base(clean), model.BundleExtension)

	var byBase, byName []*model.TemplateMetadata
	for i := 0; i < inv.Len(); i++ {
		t := inv.At(i)
		if t.Path == clean {
			return t, nil
		}
		if strings.TrimSuffix(filepath.Base(t.Path), model.BundleExtension) == base {
			byBase = append(byBase, t)
		}
		if strings.EqualFold(t.DisplayName(), query) {
			byName = append(byName, t)
		}
	}

	for _, candidates := range [][]*model.TemplateMetadata{byBase, byName} {
		switch len(candidates) {
		case 0:
			continue
		case 1:
			return candidates[0], nil
		default:
			paths := make([]string, len(candidates))
			for i, c := range candidates {
				paths[i] = c.Path
			}
			return nil, NewAppError(TemplateAmbiguous,
				"query "+strconv.Quote(query)+" matches several templates: "+strings.Join(paths, ", "), nil)
		}
	}

	return nil, NewNotFoundError(query)
}

// ListTemplates returns the templates of a category in inventory order.
// An empty category lists everything.
func ListTemplates(inv *inventory.Inventory, category string) ([]model.TemplateMetadata, error) {
	if strings.TrimSpace(category) == "" {
		return inv.Templates(), nil
	}
	cat, ok := kind.ParseCategory(category)
	if !ok {
		return nil, NewValidationError("unknown category "+strconv.Quote(category)+" (expected project, file, or package)", nil)
	}
	return inv.Filter(func(t model.TemplateMetadata) bool {
		return t.Kind.Category() == cat
	}), nil
}
