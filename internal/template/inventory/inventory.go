// Package inventory holds the immutable result of one scan.
//
// An Inventory is built once and never mutated afterwards, so it can be
// shared between any number of readers without locking. Pointers returned
// by Lookup refer to the Inventory's own entries and must be treated as
// read-only.
package inventory

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/tacogips/xtinspect/internal/template/kind"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// Diagnostic records a bundle or root that was skipped during a scan.
type Diagnostic struct {
	// Path is the descriptor or root path the problem belongs to.
	Path string
	// Err is the cause.
	Err error
}

// Error returns "path: cause".
func (d Diagnostic) Error() string {
	if d.Err == nil {
		return d.Path
	}
	return fmt.Sprintf("%s: %v", d.Path, d.Err)
}

// Unwrap returns the cause.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Inventory is the ordered collection of decoded templates from one scan.
type Inventory struct {
	templates         []model.TemplateMetadata
	diagnostics       []Diagnostic
	index             map[string][]int
	totalCombinations int
	fingerprint       string
}

// New builds an Inventory. Templates are ordered by Path so the iteration
// order does not depend on the order they were decoded in.
func New(templates []model.TemplateMetadata, diagnostics []Diagnostic) *Inventory {
	sorted := make([]model.TemplateMetadata, len(templates))
	copy(sorted, templates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Identifier < sorted[j].Identifier
	})

	diags := make([]Diagnostic, len(diagnostics))
	copy(diags, diagnostics)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Path < diags[j].Path
	})

	inv := &Inventory{
		templates:   sorted,
		diagnostics: diags,
		index:       make(map[string][]int, len(sorted)),
	}

	// Identifier matches come before kind matches; each group is in path
	// order.
	for i, t := range sorted {
		if t.Identifier != "" {
			inv.index[t.Identifier] = append(inv.index[t.Identifier], i)
		}
	}
	for i, t := range sorted {
		if t.Kind.Raw != "" {
			inv.index[t.Kind.Raw] = append(inv.index[t.Kind.Raw], i)
		}
	}

	total := 0
	for _, t := range sorted {
		total = saturatingAdd(total, t.TotalCombinations)
	}
	inv.totalCombinations = total
	inv.fingerprint = fingerprint(sorted)

	return inv
}

// Empty returns an Inventory with no templates.
func Empty() *Inventory {
	return New(nil, nil)
}

// Templates returns the templates in path order. The slice is a copy; the
// elements share their nested slices with the Inventory.
func (inv *Inventory) Templates() []model.TemplateMetadata {
	out := make([]model.TemplateMetadata, len(inv.templates))
	copy(out, inv.templates)
	return out
}

// Len returns the number of templates.
func (inv *Inventory) Len() int {
	return len(inv.templates)
}

// At returns the i-th template in path order.
func (inv *Inventory) At(i int) *model.TemplateMetadata {
	return &inv.templates[i]
}

// TotalTemplates returns the number of templates.
func (inv *Inventory) TotalTemplates() int {
	return len(inv.templates)
}

// TotalCombinations returns the sum of TotalCombinations over all templates.
func (inv *Inventory) TotalCombinations() int {
	return inv.totalCombinations
}

// Diagnostics returns the skipped bundles and roots in path order.
func (inv *Inventory) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(inv.diagnostics))
	copy(out, inv.diagnostics)
	return out
}

// Lookup finds a template by identifier, falling back to its kind
// identifier. The first candidate wins.
func (inv *Inventory) Lookup(id string) (*model.TemplateMetadata, bool) {
	idx := inv.index[id]
	if len(idx) == 0 {
		return nil, false
	}
	return &inv.templates[idx[0]], true
}

// Candidates returns every template matching id: those declaring it as
// their identifier first, then those of that kind, each in path order.
func (inv *Inventory) Candidates(id string) []*model.TemplateMetadata {
	idx := inv.index[id]
	if len(idx) == 0 {
		return nil
	}
	out := make([]*model.TemplateMetadata, 0, len(idx))
	for _, i := range idx {
		out = append(out, &inv.templates[i])
	}
	return out
}

// ByCategory counts templates per kind category.
func (inv *Inventory) ByCategory() map[kind.Category]int {
	counts := make(map[kind.Category]int)
	for _, t := range inv.templates {
		counts[t.Kind.Category()]++
	}
	return counts
}

// Filter returns the templates for which keep returns true, in path order.
func (inv *Inventory) Filter(keep func(model.TemplateMetadata) bool) []model.TemplateMetadata {
	var out []model.TemplateMetadata
	for _, t := range inv.templates {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Fingerprint is a hex BLAKE3 digest over the ordered paths and modeled
// fields of every template. Equal inventories have equal fingerprints.
func (inv *Inventory) Fingerprint() string {
	return inv.fingerprint
}

func fingerprint(templates []model.TemplateMetadata) string {
	h := blake3.New()
	for _, t := range templates {
		h.Write([]byte(t.Path))
		h.Write([]byte("\x00"))
		// TemplateMetadata holds only strings, ints and slices of them, so
		// Marshal cannot fail.
		data, _ := json.Marshal(t)
		h.Write(data)
		h.Write([]byte("\x00"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
