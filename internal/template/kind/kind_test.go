package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Known(t *testing.T) {
	tests := []struct {
		raw      string
		id       ID
		category Category
		base     bool
		utility  bool
	}{
		{"Xcode.Xcode3.ProjectTemplateUnitKind", ProjectTemplateUnit, CategoryProject, false, false},
		{"Xcode.IDEFoundation.TextSubstitutionFileTemplateKind", FoundationTextSubstitutionFile, CategoryFile, false, false},
		{"Xcode.IDESwiftPackageSupport.PackageTemplateKind", PackageTemplate, CategoryPackage, false, false},
		{"com.apple.dt.unit.base", UnitBase, CategoryProject, true, false},
		{"com.apple.dt.document.sourcecode.base", SourceFileBase, CategoryFile, true, false},
		{"com.apple.dt.unit.languageChoice", LanguageChoice, CategoryProject, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			k := Classify(tt.raw)
			assert.Equal(t, tt.id, k.ID)
			assert.Equal(t, tt.raw, k.Raw)
			assert.True(t, k.IsKnown())
			assert.Equal(t, tt.category, k.Category())
			assert.Equal(t, tt.base, k.IsBase())
			assert.Equal(t, tt.utility, k.IsUtility())
			assert.NotEmpty(t, k.DisplayName())
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		category Category
		display  string
	}{
		{"empty", "", CategoryProject, "Unknown"},
		{"dotted project id", "com.example.unit.myApp", CategoryProject, "myApp"},
		{"file-like kind", "Vendor.Tools.CustomFileTemplateKind", CategoryFile, "CustomFileTemplateKind"},
		{"package-like kind", "Vendor.PackageKind", CategoryPackage, "PackageKind"},
		{"trailing dot", "odd.", CategoryProject, "odd."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Classify(tt.raw)
			assert.Equal(t, Unknown, k.ID)
			assert.Equal(t, tt.raw, k.Raw)
			assert.False(t, k.IsKnown())
			assert.Equal(t, tt.category, k.Category())
			assert.Equal(t, tt.display, k.DisplayName())
		})
	}
}

func TestClassify_UnknownFlagsGuess(t *testing.T) {
	assert.True(t, Classify("com.example.unit.customBase").IsBase())
	assert.True(t, Classify("com.example.unit.colorChoice").IsUtility())
	assert.False(t, Classify("com.example.unit.app").IsBase())
}

func TestClassify_Deterministic(t *testing.T) {
	for _, k := range All() {
		assert.Equal(t, k, Classify(k.Raw))
	}
}

func TestAll_CoversTable(t *testing.T) {
	kinds := All()
	require.Len(t, kinds, int(idCount)-1)

	seen := make(map[string]bool)
	for _, k := range kinds {
		require.NotEmpty(t, k.Raw)
		require.False(t, seen[k.Raw], "duplicate identifier %s", k.Raw)
		seen[k.Raw] = true
	}
}

func TestUnknownKind_IsZeroValue(t *testing.T) {
	assert.Equal(t, Kind{}, UnknownKind())
	assert.Equal(t, "unknown", UnknownKind().String())
}

func TestCategory_String(t *testing.T) {
	for _, c := range []Category{CategoryProject, CategoryFile, CategoryPackage} {
		parsed, ok := ParseCategory(c.String())
		require.True(t, ok)
		assert.Equal(t, c, parsed)
	}
	_, ok := ParseCategory("workspace")
	assert.False(t, ok)
}
