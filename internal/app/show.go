package app

import (
	"github.com/tacogips/xtinspect/internal/template/ancestry"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// TemplateDetail is everything the show command prints about a template.
type TemplateDetail struct {
	Template  *model.TemplateMetadata
	Ancestors []ancestry.ResolvedAncestor
	Dirs      int
	Files     int
}

// ShowTemplate finds a template and resolves its direct ancestors.
func ShowTemplate(inv *inventory.Inventory, query string) (*TemplateDetail, error) {
	t, err := FindTemplate(inv, query)
	if err != nil {
		return nil, err
	}
	dirs, files := model.CountNodes(t.FileStructure)
	return &TemplateDetail{
		Template:  t,
		Ancestors: ancestry.Resolve(*t, inv),
		Dirs:      dirs,
		Files:     files,
	}, nil
}

// AncestorNode is one node of an expanded ancestor tree.
type AncestorNode struct {
	Ancestor ancestry.ResolvedAncestor
	Children []AncestorNode
	// Truncated is set on local ancestors whose expansion stopped at
	// ancestry.MaxDepth.
	Truncated bool
}

// AncestorTree expands the ancestors of the queried template down to
// ancestry.MaxDepth.
func AncestorTree(inv *inventory.Inventory, query string) (*model.TemplateMetadata, []AncestorNode, error) {
	t, err := FindTemplate(inv, query)
	if err != nil {
		return nil, nil, err
	}
	return t, expandNodes(ancestry.Resolve(*t, inv), inv), nil
}

func expandNodes(level []ancestry.ResolvedAncestor, inv *inventory.Inventory) []AncestorNode {
	if len(level) == 0 {
		return nil
	}
	nodes := make([]AncestorNode, 0, len(level))
	for _, a := range level {
		node := AncestorNode{Ancestor: a}
		if a.IsLocal() {
			node.Children = expandNodes(a.Expand(inv), inv)
			node.Truncated = a.Depth >= ancestry.MaxDepth && len(a.Template.Ancestors) > 0
		}
		nodes = append(nodes, node)
	}
	return nodes
}
