// Package scanner discovers template bundles under root directories and
// builds an Inventory from them.
//
// A bundle is any directory holding the descriptor file. Bundles are decoded
// in parallel; the Inventory orders them by path, so the result does not
// depend on which worker finished first. A bundle whose descriptor cannot be
// parsed is skipped and recorded as a diagnostic.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/decoder"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// Options configures a Scanner.
type Options struct {
	// DescriptorName is the descriptor file that marks a bundle directory.
	DescriptorName string
	// Workers is the maximum number of bundles decoded at once.
	Workers int
	// CacheSize is the number of decoded descriptors kept between scans.
	// Zero disables the cache.
	CacheSize int
	// IncludeHidden includes dot-prefixed directories and files.
	IncludeHidden bool
}

// DefaultOptions returns the default scanner options.
func DefaultOptions() Options {
	return Options{
		DescriptorName: model.DescriptorFile,
		Workers:        runtime.NumCPU(),
		CacheSize:      0,
	}
}

// Scanner builds inventories from the filesystem. It is safe for concurrent
// use.
type Scanner struct {
	opts  Options
	cache *lru.Cache[cacheKey, model.TemplateMetadata]

	// beforeDecode is a test hook called before each bundle is decoded.
	beforeDecode func(bundle string)
}

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// New creates a Scanner. Zero-valued options fall back to the defaults.
func New(opts Options) (*Scanner, error) {
	defaults := DefaultOptions()
	if opts.DescriptorName == "" {
		opts.DescriptorName = defaults.DescriptorName
	}
	if opts.Workers < 1 {
		opts.Workers = defaults.Workers
	}

	s := &Scanner{opts: opts}
	if opts.CacheSize > 0 {
		cache, err := lru.New[cacheKey, model.TemplateMetadata](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// Options returns the effective options.
func (s *Scanner) Options() Options {
	return s.opts
}

type bundleResult struct {
	template model.TemplateMetadata
	diag     *inventory.Diagnostic
}

// Scan walks every root and returns the Inventory of all bundles found.
// Unreadable roots and unparsable descriptors become diagnostics. The only
// error is cancellation of ctx.
func (s *Scanner) Scan(ctx context.Context, roots []string) (*inventory.Inventory, error) {
	debug.DebugSection("scan")
	debug.DebugValue("roots", roots)

	if len(roots) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return inventory.Empty(), nil
	}

	var diags []inventory.Diagnostic
	bundles := make(map[string]bool)
	var order []string

	for _, root := range roots {
		found, rootDiags, err := s.discover(ctx, root)
		if err != nil {
			return nil, err
		}
		diags = append(diags, rootDiags...)
		for _, dir := range found {
			if !bundles[dir] {
				bundles[dir] = true
				order = append(order, dir)
			}
		}
	}
	debug.Debug("[scan] Discovered %d bundles", len(order))

	results := make([]bundleResult, len(order))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	for i, dir := range order {
		i, dir := i, dir
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.decodeBundle(dir, bundles)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		debug.Debug("[scan] Cancelled: %v", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templates := make([]model.TemplateMetadata, 0, len(results))
	for _, r := range results {
		if r.diag != nil {
			diags = append(diags, *r.diag)
			continue
		}
		templates = append(templates, r.template)
	}

	inv := inventory.New(templates, diags)
	debug.Debug("[scan] Inventory: %d templates, %d combinations, %d skipped",
		inv.TotalTemplates(), inv.TotalCombinations(), len(diags))
	return inv, nil
}

// discover returns the bundle directories under root in walk order.
func (s *Scanner) discover(ctx context.Context, root string) ([]string, []inventory.Diagnostic, error) {
	root = filepath.Clean(root)
	debug.Debug("[scan] Walking root: %s", root)

	var bundles []string
	var diags []inventory.Diagnostic

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				debug.Debug("[scan] Root unreadable: %v", err)
				diags = append(diags, inventory.Diagnostic{Path: root, Err: NewRootError(root, err)})
				return filepath.SkipDir
			}
			debug.Debug("[scan] Skipping unreadable entry %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path != root && s.hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() && d.Name() == s.opts.DescriptorName {
			bundles = append(bundles, filepath.Dir(path))
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, err
		}
		diags = append(diags, inventory.Diagnostic{Path: root, Err: NewRootError(root, err)})
	}

	return bundles, diags, nil
}

func (s *Scanner) hidden(name string) bool {
	return !s.opts.IncludeHidden && strings.HasPrefix(name, ".")
}

// decodeBundle decodes one bundle. bundles is read-only here.
func (s *Scanner) decodeBundle(dir string, bundles map[string]bool) bundleResult {
	if s.beforeDecode != nil {
		s.beforeDecode(dir)
	}

	descPath := filepath.Join(dir, s.opts.DescriptorName)
	m, err := s.decodeDescriptor(dir, descPath)
	if err != nil {
		debug.Debug("[scan] Skipping %s: %v", dir, err)
		return bundleResult{diag: &inventory.Diagnostic{Path: descPath, Err: err}}
	}

	if m.FileStructure == nil {
		m.FileStructure = s.diskTree(dir, "", bundles, 1)
	}
	return bundleResult{template: m}
}

func (s *Scanner) decodeDescriptor(dir, descPath string) (model.TemplateMetadata, error) {
	info, err := os.Stat(descPath)
	if err != nil {
		return model.TemplateMetadata{}, NewUnreadableError(descPath, err)
	}

	key := cacheKey{path: descPath, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if s.cache != nil {
		if m, ok := s.cache.Get(key); ok {
			debug.Debug("[scan] Cache hit: %s", descPath)
			return m, nil
		}
	}

	doc, err := codec.ReadFile(descPath)
	if err != nil {
		var synErr *codec.SyntaxError
		if errors.As(err, &synErr) {
			return model.TemplateMetadata{}, NewSyntaxError(descPath, err)
		}
		return model.TemplateMetadata{}, NewUnreadableError(descPath, err)
	}

	m, anomalies := decoder.DecodeWithReport(doc, dir)
	for _, a := range anomalies {
		debug.Debug("[decode] %s: %s", descPath, a)
	}

	if s.cache != nil {
		s.cache.Add(key, m)
	}
	return m, nil
}

// diskTree lists a bundle's own files as FileNodes, sorted by name. The
// descriptor, hidden entries, and nested bundles are left out. It returns
// nil when nothing remains.
func (s *Scanner) diskTree(dir, parent string, bundles map[string]bool, depth int) []model.FileNode {
	if depth > decoder.MaxTreeDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		debug.Debug("[scan] Cannot list %s: %v", dir, err)
		return nil
	}

	var nodes []model.FileNode
	for _, entry := range entries {
		name := entry.Name()
		if s.hidden(name) {
			continue
		}
		if parent == "" && name == s.opts.DescriptorName {
			continue
		}

		full := filepath.Join(dir, name)
		node := model.FileNode{Name: name, Path: model.JoinPath(parent, name)}
		if entry.IsDir() {
			if bundles[full] {
				continue
			}
			node.IsDirectory = true
			node.Children = s.diskTree(full, node.Path, bundles, depth+1)
		}
		nodes = append(nodes, node)
	}
	return nodes
}
