package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <template>",
	Short: "Re-encode a template descriptor",
	Long: `Rebuild a template's descriptor from its decoded fields and write it.

Only the fields xtinspect models are written; other descriptor keys are
dropped. The format defaults to the configured output.encode_format.

Examples:
  xtinspect encode com.example.app
  xtinspect encode com.example.app --format binary --output TemplateInfo.plist`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

// Encode command flags
var (
	encodeFormat string
	encodeOutput string
)

func init() {
	encodeCmd.Flags().StringVar(&encodeFormat, FlagFormat, "", "Property list format (xml, binary, openstep, gnustep)")
	encodeCmd.Flags().StringVarP(&encodeOutput, FlagOutput, "o", "", DescOutput)
}

func runEncode(cmd *cobra.Command, args []string) error {
	inv, cfg, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	format := encodeFormat
	if format == "" {
		format = cfg.Output.EncodeFormat
	}

	if err := app.EncodeTemplate(inv, app.EncodeOptions{
		Query:  args[0],
		Format: format,
		Output: encodeOutput,
		Writer: stdout,
	}); err != nil {
		return err
	}

	if encodeOutput != "" {
		printSuccess(fmt.Sprintf("Wrote %s", encodeOutput))
	}
	return nil
}

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every template survives an encode and decode cycle",
	Long: `Encode every template in the inventory, decode the result, and compare
the decoded fields with the source ones. Differences are printed and the
command fails when any template does not round-trip.

Examples:
  xtinspect verify
  xtinspect verify --format binary`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

var verifyFormat string

func init() {
	verifyCmd.Flags().StringVar(&verifyFormat, FlagFormat, "xml", "Property list format used for the cycle")
}

func runVerify(cmd *cobra.Command, args []string) error {
	inv, _, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	result, err := app.VerifyRoundTrip(inv, verifyFormat)
	if err != nil {
		return err
	}

	for _, f := range result.Failures {
		printErrorMsg(f.Path)
		fmt.Fprintln(stderr, f.Diff)
	}
	if !result.OK() {
		return fmt.Errorf("%d of %d templates did not round-trip", len(result.Failures), result.Checked)
	}

	printSuccess(fmt.Sprintf("All %d templates round-trip", result.Checked))
	return nil
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory snapshot",
	Long: `Write the inventory (templates, aggregates, fingerprint, skipped bundles)
as JSON, YAML, or CBOR. The format defaults to output.export_format.

Examples:
  xtinspect export
  xtinspect export --format yaml
  xtinspect export --format cbor --output inventory.cbor`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// Export command flags
var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, FlagFormat, "", "Snapshot format (json, yaml, cbor)")
	exportCmd.Flags().StringVarP(&exportOutput, FlagOutput, "o", "", DescOutput)
}

func runExport(cmd *cobra.Command, args []string) error {
	inv, cfg, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	format := exportFormat
	if format == "" {
		format = cfg.Output.ExportFormat
	}

	if err := app.ExportInventory(inv, app.ExportOptions{
		Format: format,
		Output: exportOutput,
		Writer: stdout,
	}); err != nil {
		return err
	}

	if exportOutput != "" {
		printSuccess(fmt.Sprintf("Wrote %s", exportOutput))
	}
	return nil
}
