// Package ancestry resolves the declared ancestor chain of a template
// against the other templates of the same inventory.
//
// Resolution only exposes the chain in declaration order. It does not merge
// properties between a template and its ancestors. Expansion is on demand
// and bounded by MaxDepth, so cyclic declarations terminate.
package ancestry

import (
	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// MaxDepth bounds ancestor expansion. Depth 1 is a template's own declared
// ancestors.
const MaxDepth = 8

// Lookup finds sibling templates by identifier or kind identifier, best
// match first. *inventory.Inventory satisfies it.
type Lookup interface {
	Candidates(id string) []*model.TemplateMetadata
}

// Resolution tells whether an ancestor was found among the sibling
// templates.
type Resolution int

const (
	// Local means the ancestor is a template in the same inventory.
	Local Resolution = iota
	// External means the ancestor is not part of the inventory.
	External
)

// String returns the string representation of the resolution.
func (r Resolution) String() string {
	switch r {
	case Local:
		return "local"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// ResolvedAncestor is one entry of a template's ancestor chain.
type ResolvedAncestor struct {
	// Kind is the declared ancestor kind.
	Kind kind.Kind
	// Resolution is Local or External.
	Resolution Resolution
	// Template is the matching sibling; nil when External.
	Template *model.TemplateMetadata
	// DisplayName is the template's name when Local and the kind's display
	// name when External.
	DisplayName string
	// Depth is 1 for declared ancestors and grows by one per expansion.
	Depth int
}

// IsLocal reports whether the ancestor was found in the inventory.
func (a ResolvedAncestor) IsLocal() bool {
	return a.Resolution == Local
}

// Resolve returns the declared ancestors of t in declaration order. A
// template is never its own ancestor: when t is the best match for a
// declared kind, the next candidate is used.
func Resolve(t model.TemplateMetadata, inv Lookup) []ResolvedAncestor {
	return resolveAt(&t, inv, 1)
}

// Expand resolves the ancestors of a local ancestor. It returns nil for
// external ancestors and once MaxDepth is reached.
func (a ResolvedAncestor) Expand(inv Lookup) []ResolvedAncestor {
	if a.Resolution != Local || a.Template == nil || a.Depth >= MaxDepth {
		return nil
	}
	return resolveAt(a.Template, inv, a.Depth+1)
}

// Chain expands the whole ancestor tree of t depth-first in pre-order,
// stopping at MaxDepth.
func Chain(t model.TemplateMetadata, inv Lookup) []ResolvedAncestor {
	var out []ResolvedAncestor
	var walk func([]ResolvedAncestor)
	walk = func(level []ResolvedAncestor) {
		for _, a := range level {
			out = append(out, a)
			walk(a.Expand(inv))
		}
	}
	walk(Resolve(t, inv))
	return out
}

func resolveAt(self *model.TemplateMetadata, inv Lookup, depth int) []ResolvedAncestor {
	if len(self.Ancestors) == 0 {
		return nil
	}

	resolved := make([]ResolvedAncestor, 0, len(self.Ancestors))
	for _, k := range self.Ancestors {
		if found := sibling(self, k, inv); found != nil {
			resolved = append(resolved, ResolvedAncestor{
				Kind:        k,
				Resolution:  Local,
				Template:    found,
				DisplayName: found.DisplayName(),
				Depth:       depth,
			})
			continue
		}
		resolved = append(resolved, ResolvedAncestor{
			Kind:        k,
			Resolution:  External,
			DisplayName: k.DisplayName(),
			Depth:       depth,
		})
	}
	return resolved
}

// sibling returns the best candidate for k other than self.
func sibling(self *model.TemplateMetadata, k kind.Kind, inv Lookup) *model.TemplateMetadata {
	if inv == nil || k.Raw == "" {
		return nil
	}
	for _, c := range inv.Candidates(k.Raw) {
		if !sameTemplate(c, self) {
			return c
		}
	}
	return nil
}

// sameTemplate compares bundles by path and declared identity; scans never
// yield two bundles with the same path.
func sameTemplate(a, b *model.TemplateMetadata) bool {
	return a == b || (a.Path == b.Path && a.Identifier == b.Identifier && a.Kind.Raw == b.Kind.Raw)
}
