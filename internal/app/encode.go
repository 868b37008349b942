package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/codec"
	"github.com/tacogips/xtinspect/internal/template/decoder"
	"github.com/tacogips/xtinspect/internal/template/encoder"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/model"
)

// EncodeOptions contains options for re-encoding a template.
type EncodeOptions struct {
	// Query selects the template (see FindTemplate).
	Query string
	// Format is the property list format name. Empty means xml.
	Format string
	// Output is the destination file. Empty means Writer.
	Output string
	// Writer receives the document when Output is empty.
	Writer io.Writer
}

// EncodeTemplate writes the descriptor document for the queried template.
func EncodeTemplate(inv *inventory.Inventory, opts EncodeOptions) error {
	format, err := codec.ParseFormat(opts.Format)
	if err != nil {
		return NewValidationError("invalid format", err)
	}

	t, err := FindTemplate(inv, opts.Query)
	if err != nil {
		return err
	}

	data, err := encoder.EncodeBytes(*t, format)
	if err != nil {
		return NewAppError(EncodeFailed, "failed to encode "+t.Path, err)
	}
	debug.Debug("[encode] %s: %d bytes as %s", t.Path, len(data), format)

	if opts.Output != "" {
		out := filepath.Clean(opts.Output)
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return NewAppError(EncodeFailed, "failed to create output directory", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return NewAppError(EncodeFailed, "failed to write "+out, err)
		}
		return nil
	}

	if opts.Writer == nil {
		return NewValidationError("no output destination", nil)
	}
	if _, err := opts.Writer.Write(data); err != nil {
		return NewAppError(EncodeFailed, "failed to write output", err)
	}
	return nil
}

// VerifyFailure is a template that did not survive an encode and decode
// cycle unchanged.
type VerifyFailure struct {
	Path string
	Diff string
}

// VerifyResult summarizes a round-trip check.
type VerifyResult struct {
	Checked  int
	Failures []VerifyFailure
}

// OK reports whether every template round-tripped.
func (r *VerifyResult) OK() bool {
	return len(r.Failures) == 0
}

var roundTripOpts = cmp.Options{
	cmpopts.IgnoreFields(model.TemplateMetadata{}, "RawContent", "RawContentType"),
}

// VerifyRoundTrip checks every template in memory, then encodes it in
// format, decodes the bytes back, and reports templates whose modeled
// fields changed. Templates holding text an XML property list cannot carry
// are checked through binary instead of xml.
func VerifyRoundTrip(inv *inventory.Inventory, format string) (*VerifyResult, error) {
	f, err := codec.ParseFormat(format)
	if err != nil {
		return nil, NewValidationError("invalid format", err)
	}

	result := &VerifyResult{}
	for _, t := range inv.Templates() {
		result.Checked++
		if diff := roundTripDiff(t, f); diff != "" {
			debug.Debug("[encode] Round-trip mismatch for %s", t.Path)
			result.Failures = append(result.Failures, VerifyFailure{Path: t.Path, Diff: diff})
		}
	}
	return result, nil
}

func roundTripDiff(t model.TemplateMetadata, format codec.Format) string {
	if diff := cmp.Diff(t, decoder.Decode(encoder.Encode(t), t.Path), roundTripOpts); diff != "" {
		return diff
	}

	if format == codec.FormatXML && !encoder.XMLSafe(t) {
		debug.Debug("[encode] %s has text xml cannot carry, checking as binary", t.Path)
		format = codec.FormatBinary
	}
	data, err := encoder.EncodeBytes(t, format)
	if err != nil {
		return "encode: " + err.Error()
	}
	doc, err := codec.Parse(data)
	if err != nil {
		return "parse: " + err.Error()
	}
	return cmp.Diff(t, decoder.Decode(doc, t.Path), roundTripOpts)
}

// ExportOptions contains options for writing an inventory snapshot.
type ExportOptions struct {
	// Format is json, yaml, or cbor.
	Format string
	// Output is the destination file. Empty means Writer.
	Output string
	// Writer receives the snapshot when Output is empty.
	Writer io.Writer
}

// ExportInventory writes the inventory snapshot.
func ExportInventory(inv *inventory.Inventory, opts ExportOptions) error {
	format, err := inventory.ParseExportFormat(opts.Format)
	if err != nil {
		return NewValidationError("invalid export format", err)
	}

	w := opts.Writer
	if opts.Output != "" {
		f, err := os.Create(filepath.Clean(opts.Output))
		if err != nil {
			return NewAppError(ExportFailed, "failed to create "+opts.Output, err)
		}
		defer f.Close()
		w = f
	}
	if w == nil {
		return NewValidationError("no output destination", nil)
	}

	if err := inv.Export(w, format); err != nil {
		return NewAppError(ExportFailed, "failed to export inventory", err)
	}
	return nil
}
