package decoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

const appTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Kind</key>
	<string>Xcode.Xcode3.ProjectTemplateUnitKind</string>
	<key>Identifier</key>
	<string>com.apple.dt.unit.multiPlatform.app</string>
	<key>Name</key>
	<string>App</string>
	<key>Concrete</key>
	<true/>
	<key>Ancestors</key>
	<array>
		<string>com.apple.dt.unit.base</string>
		<string>com.apple.dt.unit.languageChoice</string>
	</array>
	<key>Options</key>
	<array>
		<dict>
			<key>Identifier</key>
			<string>productName</string>
			<key>Name</key>
			<string>Product Name</string>
			<key>Type</key>
			<string>text</string>
		</dict>
		<dict>
			<key>Identifier</key>
			<string>languageChoice</string>
			<key>Name</key>
			<string>Language</string>
			<key>Type</key>
			<string>popup</string>
			<key>Default</key>
			<string>Swift</string>
			<key>Values</key>
			<array>
				<string>Swift</string>
				<string>Objective-C</string>
			</array>
		</dict>
		<dict>
			<key>Identifier</key>
			<string>interface</string>
			<key>Type</key>
			<string>buttons</string>
			<key>Values</key>
			<array>
				<string>SwiftUI</string>
				<string>Storyboard</string>
				<string>XIB</string>
			</array>
		</dict>
		<dict>
			<key>Identifier</key>
			<string>includeTests</string>
			<key>Type</key>
			<string>checkbox</string>
			<key>Default</key>
			<true/>
		</dict>
	</array>
	<key>FileStructure</key>
	<array>
		<dict>
			<key>Name</key>
			<string>Sources</string>
			<key>Children</key>
			<array>
				<dict>
					<key>Name</key>
					<string>App.swift</string>
				</dict>
			</array>
		</dict>
		<dict>
			<key>Name</key>
			<string>Assets.xcassets</string>
			<key>Children</key>
			<array/>
		</dict>
		<dict>
			<key>Name</key>
			<string>README.md</string>
		</dict>
	</array>
</dict>
</plist>
`

func parse(t *testing.T, text string) codec.Document {
	t.Helper()
	doc, err := codec.Parse([]byte(text))
	require.NoError(t, err)
	return doc
}

func TestDecode_FullDocument(t *testing.T) {
	doc := parse(t, appTemplate)
	m, anomalies := DecodeWithReport(doc, "/templates/App.xctemplate")

	assert.Empty(t, anomalies)
	assert.Equal(t, kind.ProjectTemplateUnit, m.Kind.ID)
	assert.Equal(t, "com.apple.dt.unit.multiPlatform.app", m.Identifier)
	assert.Equal(t, "App", m.Name)
	assert.Equal(t, "/templates/App.xctemplate", m.Path)
	assert.Equal(t, []kind.Kind{
		kind.Classify("com.apple.dt.unit.base"),
		kind.Classify("com.apple.dt.unit.languageChoice"),
	}, m.Ancestors)

	require.Len(t, m.Options, 4)
	assert.Equal(t, model.TemplateOption{
		Identifier: "productName",
		Name:       "Product Name",
		Type:       model.OptionTypeText,
	}, m.Options[0])
	assert.Equal(t, []string{"Swift", "Objective-C"}, m.Options[1].Choices)
	assert.Equal(t, "Swift", m.Options[1].Default)
	assert.Equal(t, []string{"SwiftUI", "Storyboard", "XIB"}, m.Options[2].Choices)
	assert.Equal(t, "true", m.Options[3].Default)
	assert.Nil(t, m.Options[3].Choices)

	assert.Equal(t, 6, m.TotalCombinations)

	assert.Equal(t, []model.FileNode{
		{Name: "Sources", Path: "Sources", IsDirectory: true, Children: []model.FileNode{
			{Name: "App.swift", Path: "Sources/App.swift"},
		}},
		{Name: "Assets.xcassets", Path: "Assets.xcassets", IsDirectory: true},
		{Name: "README.md", Path: "README.md"},
	}, m.FileStructure)

	assert.Equal(t, appTemplate, m.RawContent)
	assert.Equal(t, "xml", m.RawContentType)
}

func TestDecode_EmptyDocument(t *testing.T) {
	m, anomalies := DecodeWithReport(codec.Document{Root: map[string]any{}}, "")

	assert.Empty(t, anomalies)
	assert.Equal(t, kind.Unknown, m.Kind.ID)
	assert.False(t, m.Kind.IsKnown())
	assert.Equal(t, "", m.Name)
	assert.Equal(t, "", m.Identifier)
	assert.NotNil(t, m.Options)
	assert.Empty(t, m.Options)
	assert.Nil(t, m.Ancestors)
	assert.Nil(t, m.FileStructure)
	assert.Equal(t, 1, m.TotalCombinations)
}

func TestDecode_NilRoot(t *testing.T) {
	m := Decode(codec.Document{}, "x")
	assert.Equal(t, kind.UnknownKind(), m.Kind)
	assert.Equal(t, 1, m.TotalCombinations)
}

// Each optional key is removed in turn; decoding must still succeed with an
// empty value for that field and leave the rest intact.
func TestDecode_MissingFieldTolerance(t *testing.T) {
	tests := []struct {
		key   string
		check func(t *testing.T, m model.TemplateMetadata)
	}{
		{model.KeyKind, func(t *testing.T, m model.TemplateMetadata) {
			assert.Equal(t, kind.UnknownKind(), m.Kind)
		}},
		{model.KeyIdentifier, func(t *testing.T, m model.TemplateMetadata) {
			assert.Equal(t, "", m.Identifier)
		}},
		{model.KeyName, func(t *testing.T, m model.TemplateMetadata) {
			assert.Equal(t, "", m.Name)
		}},
		{model.KeyAncestors, func(t *testing.T, m model.TemplateMetadata) {
			assert.Nil(t, m.Ancestors)
		}},
		{model.KeyOptions, func(t *testing.T, m model.TemplateMetadata) {
			assert.Empty(t, m.Options)
			assert.Equal(t, 1, m.TotalCombinations)
		}},
		{model.KeyFileStructure, func(t *testing.T, m model.TemplateMetadata) {
			assert.Nil(t, m.FileStructure)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			doc := parse(t, appTemplate)
			delete(doc.Root, tt.key)

			m, anomalies := DecodeWithReport(doc, "p")
			assert.Empty(t, anomalies)
			tt.check(t, m)
			if tt.key != model.KeyName {
				assert.Equal(t, "App", m.Name)
			}
		})
	}
}

func TestDecode_OptionMissingKeys(t *testing.T) {
	for _, key := range []string{
		model.KeyOptionIdentifier, model.KeyOptionName, model.KeyOptionType,
		model.KeyOptionDefault, model.KeyOptionValues,
	} {
		t.Run(key, func(t *testing.T) {
			doc := parse(t, appTemplate)
			options := doc.Root[model.KeyOptions].([]any)
			delete(options[1].(map[string]any), key)

			m, anomalies := DecodeWithReport(doc, "p")
			assert.Empty(t, anomalies)
			require.Len(t, m.Options, 4)
			if key == model.KeyOptionType || key == model.KeyOptionValues {
				assert.Nil(t, m.Options[1].Choices)
			}
		})
	}
}

func TestDecode_FieldAnomalies(t *testing.T) {
	root := map[string]any{
		model.KeyKind:       uint64(7),
		model.KeyIdentifier: []any{"nope"},
		model.KeyName:       "Broken",
		model.KeyAncestors: []any{
			"com.apple.dt.unit.base",
			uint64(3),
			"",
			"com.example.custom",
		},
		model.KeyOptions: []any{
			"not a dictionary",
			map[string]any{
				model.KeyOptionIdentifier: "size",
				model.KeyOptionType:       "popup",
				model.KeyOptionDefault:    uint64(2),
				model.KeyOptionValues:     []any{uint64(1), uint64(2), map[string]any{}, true},
			},
			map[string]any{
				model.KeyOptionIdentifier: "blob",
				model.KeyOptionType:       "text",
				model.KeyOptionDefault:    []byte{1, 2},
			},
		},
		model.KeyFileStructure: []any{
			map[string]any{model.KeyNodeName: "ok.txt"},
			map[string]any{model.KeyNodeName: ""},
			map[string]any{model.KeyNodeName: "a/b"},
			"stray",
			map[string]any{model.KeyNodeName: "weird", model.KeyNodeChildren: "x"},
		},
	}

	m, anomalies := DecodeWithReport(codec.Document{Root: root}, "p")

	assert.Equal(t, kind.UnknownKind(), m.Kind)
	assert.Equal(t, "", m.Identifier)
	assert.Equal(t, "Broken", m.Name)
	assert.Equal(t, []kind.Kind{
		kind.Classify("com.apple.dt.unit.base"),
		kind.Classify("com.example.custom"),
	}, m.Ancestors)

	require.Len(t, m.Options, 2)
	assert.Equal(t, "2", m.Options[0].Default)
	assert.Equal(t, []string{"1", "2", "true"}, m.Options[0].Choices)
	assert.Equal(t, "", m.Options[1].Default)
	assert.Equal(t, 3, m.TotalCombinations)

	assert.Equal(t, []model.FileNode{
		{Name: "ok.txt", Path: "ok.txt"},
		{Name: "weird", Path: "weird"},
	}, m.FileStructure)

	fields := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		fields = append(fields, a.Field)
	}
	assert.Contains(t, fields, "Kind")
	assert.Contains(t, fields, "Identifier")
	assert.Contains(t, fields, "Ancestors[1]")
	assert.Contains(t, fields, "Ancestors[2]")
	assert.Contains(t, fields, "Options[0]")
	assert.Contains(t, fields, "Options[1].Values[2]")
	assert.Contains(t, fields, "Options[2].Default")
	assert.Contains(t, fields, "FileStructure[3]")
	assert.Contains(t, fields, "FileStructure[4].Children")
}

func TestDecode_WrongContainerTypes(t *testing.T) {
	root := map[string]any{
		model.KeyAncestors:     "com.apple.dt.unit.base",
		model.KeyOptions:       map[string]any{},
		model.KeyFileStructure: "Sources",
	}

	m, anomalies := DecodeWithReport(codec.Document{Root: root}, "p")
	assert.Nil(t, m.Ancestors)
	assert.Empty(t, m.Options)
	assert.Nil(t, m.FileStructure)
	assert.Len(t, anomalies, 3)
}

func TestDecode_NodesFallback(t *testing.T) {
	root := map[string]any{
		model.KeyNodes: []any{
			"Sources/App.swift:comments",
			"Sources/Model/Item.swift",
			"README.md",
			"Sources/App.swift:imports",
			"../escape.txt",
			uint64(1),
			"",
		},
	}

	m, anomalies := DecodeWithReport(codec.Document{Root: root}, "p")

	assert.Equal(t, []model.FileNode{
		{Name: "Sources", Path: "Sources", IsDirectory: true, Children: []model.FileNode{
			{Name: "App.swift", Path: "Sources/App.swift"},
			{Name: "Model", Path: "Sources/Model", IsDirectory: true, Children: []model.FileNode{
				{Name: "Item.swift", Path: "Sources/Model/Item.swift"},
			}},
		}},
		{Name: "README.md", Path: "README.md"},
	}, m.FileStructure)
	assert.Len(t, anomalies, 3)
}

func TestDecode_FileStructurePreferredOverNodes(t *testing.T) {
	root := map[string]any{
		model.KeyFileStructure: []any{map[string]any{model.KeyNodeName: "a.txt"}},
		model.KeyNodes:         []any{"b.txt"},
	}
	m := Decode(codec.Document{Root: root}, "p")
	require.Len(t, m.FileStructure, 1)
	assert.Equal(t, "a.txt", m.FileStructure[0].Name)
}

func TestDecode_FileNodeInvariants(t *testing.T) {
	m := Decode(parse(t, appTemplate), "p")

	for _, root := range m.FileStructure {
		root.Walk(func(n model.FileNode) bool {
			if !n.IsDirectory {
				assert.Empty(t, n.Children, n.Path)
			}
			for _, c := range n.Children {
				assert.Equal(t, n.Path+"/"+c.Name, c.Path)
			}
			return true
		})
	}
}

func TestDecode_DepthBound(t *testing.T) {
	var nested any = []any{map[string]any{model.KeyNodeName: "leaf"}}
	for i := 0; i < MaxTreeDepth+5; i++ {
		nested = []any{map[string]any{model.KeyNodeName: "d", model.KeyNodeChildren: nested}}
	}

	m, anomalies := DecodeWithReport(codec.Document{Root: map[string]any{model.KeyFileStructure: nested}}, "p")
	require.NotEmpty(t, anomalies)

	depth := 0
	nodes := m.FileStructure
	for len(nodes) > 0 {
		depth++
		nodes = nodes[0].Children
	}
	assert.Equal(t, MaxTreeDepth, depth)
}

func TestStringify(t *testing.T) {
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"x", "x", true},
		{true, "true", true},
		{false, "false", true},
		{uint64(42), "42", true},
		{int64(-3), "-3", true},
		{1.5, "1.5", true},
		{when, "2024-03-01T12:00:00Z", true},
		{[]byte{1}, "", false},
		{[]any{}, "", false},
		{nil, "", false},
	}

	for _, tt := range tests {
		got, ok := stringify(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
