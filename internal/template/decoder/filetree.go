package decoder

import (
	"fmt"
	"strings"

	"github.com/tacogips/xtinspect/internal/template/model"
)

// fileStructure reads FileStructure, falling back to the vendor Nodes list.
// Nil means the descriptor declares no file structure.
func (s *state) fileStructure(root map[string]any) []model.FileNode {
	if v, ok := root[model.KeyFileStructure]; ok {
		list, ok := v.([]any)
		if !ok {
			s.note(model.KeyFileStructure, "expected array, got %T", v)
			return nil
		}
		return s.fileNodes(list, "", 1, model.KeyFileStructure)
	}

	if v, ok := root[model.KeyNodes]; ok {
		list, ok := v.([]any)
		if !ok {
			s.note(model.KeyNodes, "expected array, got %T", v)
			return nil
		}
		return s.nodesTree(list)
	}

	return nil
}

// fileNodes decodes one level of FileStructure. The result is never nil so
// that an empty declared structure stays distinguishable from an absent one.
func (s *state) fileNodes(list []any, parent string, depth int, field string) []model.FileNode {
	nodes := make([]model.FileNode, 0, len(list))
	if depth > MaxTreeDepth {
		s.note(field, "file structure deeper than %d levels dropped", MaxTreeDepth)
		return nodes
	}

	for i, item := range list {
		itemField := fmt.Sprintf("%s[%d]", field, i)
		dict, ok := item.(map[string]any)
		if !ok {
			s.note(itemField, "expected dictionary, got %T", item)
			continue
		}

		name, ok := dict[model.KeyNodeName].(string)
		if !ok || !validNodeName(name) {
			s.note(itemField+"."+model.KeyNodeName, "missing or invalid name")
			continue
		}

		node := model.FileNode{
			Name: name,
			Path: model.JoinPath(parent, name),
		}

		if v, ok := dict[model.KeyNodeChildren]; ok {
			children, ok := v.([]any)
			if !ok {
				s.note(itemField+"."+model.KeyNodeChildren, "expected array, got %T", v)
			} else {
				node.IsDirectory = true
				node.Children = s.fileNodes(children, node.Path, depth+1, itemField+"."+model.KeyNodeChildren)
				if len(node.Children) == 0 {
					node.Children = nil
				}
			}
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func validNodeName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}

// nodesTree builds a tree from a flat list of "dir/dir/file[:variant]"
// strings. Intermediate components are directories, the last is a file
// unless a later entry nests beneath it.
func (s *state) nodesTree(list []any) []model.FileNode {
	root := &treeBuilder{dir: true}

	for i, item := range list {
		field := fmt.Sprintf("%s[%d]", model.KeyNodes, i)
		raw, ok := item.(string)
		if !ok {
			s.note(field, "expected string, got %T", item)
			continue
		}
		if idx := strings.IndexByte(raw, ':'); idx >= 0 {
			raw = raw[:idx]
		}

		var parts []string
		escapes := false
		for _, part := range strings.Split(raw, "/") {
			part = strings.TrimSpace(part)
			if part == "" || part == "." {
				continue
			}
			if part == ".." {
				escapes = true
			}
			parts = append(parts, part)
		}
		if len(parts) == 0 {
			s.note(field, "empty path")
			continue
		}
		if len(parts) > MaxTreeDepth {
			s.note(field, "path deeper than %d levels dropped", MaxTreeDepth)
			continue
		}
		if escapes {
			s.note(field, "path contains a parent reference")
			continue
		}

		node := root
		for j, part := range parts {
			node = node.child(part)
			if j < len(parts)-1 {
				node.dir = true
			}
		}
	}

	return root.build("")
}

type treeBuilder struct {
	name     string
	dir      bool
	children []*treeBuilder
	index    map[string]*treeBuilder
}

func (b *treeBuilder) child(name string) *treeBuilder {
	if c, ok := b.index[name]; ok {
		return c
	}
	if b.index == nil {
		b.index = make(map[string]*treeBuilder)
	}
	c := &treeBuilder{name: name}
	b.index[name] = c
	b.children = append(b.children, c)
	return c
}

func (b *treeBuilder) build(parent string) []model.FileNode {
	nodes := make([]model.FileNode, 0, len(b.children))
	for _, c := range b.children {
		node := model.FileNode{
			Name:        c.name,
			Path:        model.JoinPath(parent, c.name),
			IsDirectory: c.dir,
		}
		if c.dir && len(c.children) > 0 {
			node.Children = c.build(node.Path)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
