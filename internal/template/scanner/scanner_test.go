package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

const descriptorTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Kind</key>
	<string>Xcode.IDEKit.TextSubstitutionFileTemplateKind</string>
	<key>Identifier</key>
	<string>%s</string>
	<key>Options</key>
	<array>
		<dict>
			<key>Identifier</key>
			<string>language</string>
			<key>Type</key>
			<string>popup</string>
			<key>Values</key>
			<array>
				<string>Swift</string>
				<string>Objective-C</string>
				<string>C++</string>
			</array>
		</dict>
	</array>
</dict>
</plist>
`

const corruptDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>Kind</key>
`

func descriptor(id string) string {
	return fmt.Sprintf(descriptorTemplate, id)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeBundle(t *testing.T, dir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, model.DescriptorFile), content)
}

func newScanner(t *testing.T, opts Options) *Scanner {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func TestScan_Resilience(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "Good.xctemplate"), descriptor("com.example.good"))
	writeBundle(t, filepath.Join(root, "Bad.xctemplate"), corruptDescriptor)

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, 1, inv.TotalTemplates())
	assert.Equal(t, 3, inv.TotalCombinations())

	diags := inv.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, filepath.Join(root, "Bad.xctemplate", model.DescriptorFile), diags[0].Path)

	var scanErr *ScanError
	require.True(t, errors.As(diags[0], &scanErr))
	assert.Equal(t, ScanDescriptorSyntax, scanErr.Type)
}

func TestScan_Determinism(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 12; i++ {
		writeBundle(t, filepath.Join(root, fmt.Sprintf("group%d", i%3), fmt.Sprintf("T%02d.xctemplate", i)),
			descriptor(fmt.Sprintf("com.example.t%02d", i)))
	}

	first, err := newScanner(t, Options{Workers: 1}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	second, err := newScanner(t, Options{Workers: 8}).Scan(context.Background(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, 12, first.TotalTemplates())
	assert.Equal(t, first.TotalCombinations(), second.TotalCombinations())
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	if diff := cmp.Diff(first.Templates(), second.Templates()); diff != "" {
		t.Errorf("template order differs (-workers=1 +workers=8):\n%s", diff)
	}

	templates := first.Templates()
	for i := 1; i < len(templates); i++ {
		assert.Less(t, templates[i-1].Path, templates[i].Path)
	}
}

func TestScan_DecodedFields(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "Swift File.xctemplate")
	writeBundle(t, bundle, descriptor("com.example.swift"))

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Equal(t, 1, inv.Len())

	tmpl := inv.At(0)
	assert.Equal(t, bundle, tmpl.Path)
	assert.Equal(t, kind.IDEKitTextSubstitutionFile, tmpl.Kind.ID)
	assert.Equal(t, "com.example.swift", tmpl.Identifier)
	assert.NotEmpty(t, tmpl.RawContent)

	found, ok := inv.Lookup("com.example.swift")
	require.True(t, ok)
	assert.Equal(t, bundle, found.Path)
}

func TestScan_NestedBundlesAndDiskTree(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "Outer.xctemplate")
	writeBundle(t, outer, descriptor("com.example.outer"))
	writeFile(t, filepath.Join(outer, "___FILEBASENAME___.swift"), "// swift")
	writeFile(t, filepath.Join(outer, "Resources", "Info.plist"), "")
	writeFile(t, filepath.Join(outer, ".DS_Store"), "")
	writeBundle(t, filepath.Join(outer, "Inner.xctemplate"), descriptor("com.example.inner"))

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Equal(t, 2, inv.TotalTemplates())

	tmpl, ok := inv.Lookup("com.example.outer")
	require.True(t, ok)

	want := []model.FileNode{
		{
			Name:        "Resources",
			Path:        "Resources",
			IsDirectory: true,
			Children: []model.FileNode{
				{Name: "Info.plist", Path: "Resources/Info.plist"},
			},
		},
		{Name: "___FILEBASENAME___.swift", Path: "___FILEBASENAME___.swift"},
	}
	if diff := cmp.Diff(want, tmpl.FileStructure); diff != "" {
		t.Errorf("file structure mismatch (-want +got):\n%s", diff)
	}

	inner, ok := inv.Lookup("com.example.inner")
	require.True(t, ok)
	assert.Nil(t, inner.FileStructure)
}

func TestScan_HiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, ".cache", "Hidden.xctemplate"), descriptor("com.example.hidden"))
	writeBundle(t, filepath.Join(root, "Visible.xctemplate"), descriptor("com.example.visible"))

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.TotalTemplates())

	inv, err = newScanner(t, Options{IncludeHidden: true}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	assert.Equal(t, 2, inv.TotalTemplates())
}

func TestScan_MissingRoot(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "A.xctemplate"), descriptor("com.example.a"))
	missing := filepath.Join(root, "does-not-exist")

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{missing, root})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.TotalTemplates())

	diags := inv.Diagnostics()
	require.Len(t, diags, 1)
	var scanErr *ScanError
	require.True(t, errors.As(diags[0], &scanErr))
	assert.Equal(t, ScanRootUnreadable, scanErr.Type)
	assert.Equal(t, missing, scanErr.Path)
}

func TestScan_OverlappingRoots(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	writeBundle(t, filepath.Join(sub, "A.xctemplate"), descriptor("com.example.a"))

	inv, err := newScanner(t, Options{}).Scan(context.Background(), []string{root, sub})
	require.NoError(t, err)
	assert.Equal(t, 1, inv.TotalTemplates())
}

func TestScan_EmptyRoots(t *testing.T) {
	inv, err := newScanner(t, Options{}).Scan(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.TotalTemplates())
	assert.Equal(t, 0, inv.TotalCombinations())
	assert.Equal(t, inventory.Empty().Fingerprint(), inv.Fingerprint())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newScanner(t, Options{}).Scan(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_CustomDescriptorName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A", "Template.plist"), descriptor("com.example.a"))
	writeBundle(t, filepath.Join(root, "B.xctemplate"), descriptor("com.example.b"))

	inv, err := newScanner(t, Options{DescriptorName: "Template.plist"}).Scan(context.Background(), []string{root})
	require.NoError(t, err)
	require.Equal(t, 1, inv.TotalTemplates())
	assert.Equal(t, "com.example.a", inv.At(0).Identifier)
}

func TestScan_CacheEquivalence(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "A.xctemplate")
	writeBundle(t, bundle, descriptor("com.example.a"))
	writeBundle(t, filepath.Join(root, "B.xctemplate"), descriptor("com.example.b"))

	cached := newScanner(t, Options{CacheSize: 16})
	plain := newScanner(t, Options{})

	first, err := cached.Scan(context.Background(), []string{root})
	require.NoError(t, err)
	second, err := cached.Scan(context.Background(), []string{root})
	require.NoError(t, err)
	reference, err := plain.Scan(context.Background(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, reference.Fingerprint(), first.Fingerprint())
	assert.Equal(t, reference.Fingerprint(), second.Fingerprint())

	writeBundle(t, bundle, descriptor("com.example.renamed"))
	third, err := cached.Scan(context.Background(), []string{root})
	require.NoError(t, err)
	_, ok := third.Lookup("com.example.renamed")
	assert.True(t, ok)
	assert.NotEqual(t, first.Fingerprint(), third.Fingerprint())
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "A.xctemplate"), descriptor("com.example.a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inv, err := newScanner(t, Options{}).Scan(ctx, []string{root})
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefresher_Superseded(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "A.xctemplate"), descriptor("com.example.a"))

	s := newScanner(t, Options{Workers: 1})
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	s.beforeDecode = func(string) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-release
		}
	}

	r := NewRefresher(s)

	type result struct {
		inv *inventory.Inventory
		err error
	}
	stale := make(chan result, 1)
	go func() {
		inv, err := r.Refresh(context.Background(), []string{root})
		stale <- result{inv: inv, err: err}
	}()

	<-entered
	fresh, err := r.Refresh(context.Background(), []string{root})
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalTemplates())

	close(release)
	res := <-stale
	assert.ErrorIs(t, res.err, ErrSuperseded)
	assert.Nil(t, res.inv)
}

func TestRefresher_Sequential(t *testing.T) {
	root := t.TempDir()
	writeBundle(t, filepath.Join(root, "A.xctemplate"), descriptor("com.example.a"))

	r := NewRefresher(newScanner(t, Options{}))
	for i := 0; i < 3; i++ {
		inv, err := r.Refresh(context.Background(), []string{root})
		require.NoError(t, err)
		assert.Equal(t, 1, inv.TotalTemplates())
	}
	r.Cancel()
}

func TestScanError(t *testing.T) {
	cause := errors.New("boom")
	err := NewSyntaxError("/t/TemplateInfo.plist", cause)
	assert.Contains(t, err.Error(), "DescriptorSyntax")
	assert.Contains(t, err.Error(), "/t/TemplateInfo.plist")
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "RootUnreadable", ScanRootUnreadable.String())
	assert.Equal(t, "DescriptorUnreadable", ScanDescriptorUnreadable.String())
	assert.Equal(t, "Unknown", ScanErrorType(99).String())
}
