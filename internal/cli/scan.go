package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/template/kind"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan template roots and print a summary",
	Long: `Scan every template root and summarize the inventory.

The summary shows how many templates were found per category, the total
number of option combinations, and the inventory fingerprint. Bundles whose
descriptor could not be read are listed as skipped.

Examples:
  xtinspect scan
  xtinspect scan --root ~/Library/Developer/Xcode/Templates
  xtinspect scan --root ./Templates --root ./MoreTemplates
  xtinspect scan --watch --interval 5s`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

// Scan command flags
var (
	scanWatch    bool
	scanInterval time.Duration
)

func init() {
	scanCmd.Flags().BoolVarP(&scanWatch, FlagWatch, "w", false, DescWatch)
	scanCmd.Flags().DurationVar(&scanInterval, FlagInterval, app.DefaultWatchInterval, DescInterval)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanWatch {
		return runScanWatch(cmd)
	}

	inv, cfg, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}
	printSummary(inv, scanRoots(cfg.Scan.Roots))
	return nil
}

// runScanWatch prints a summary whenever the inventory changes, until
// interrupted.
func runScanWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	roots := scanRoots(cfg.Scan.Roots)
	printInfo(paint(mutedStyle, fmt.Sprintf("Watching every %s, press Ctrl-C to stop", scanInterval)))
	return app.WatchTemplates(ctx, app.WatchOptions{
		Config:   cfg,
		Roots:    globalRoots,
		Interval: scanInterval,
		OnChange: func(inv *inventory.Inventory) {
			printSummary(inv, roots)
		},
	})
}

// scanRoots returns the --root flags, or configured when none were given.
func scanRoots(configured []string) []string {
	if len(globalRoots) > 0 {
		return globalRoots
	}
	return configured
}

func printSummary(inv *inventory.Inventory, roots []string) {
	printHeader("Inventory")
	for _, r := range roots {
		printField("Root", r)
	}
	printField("Templates", fmt.Sprintf("%d", inv.TotalTemplates()))
	byCategory := inv.ByCategory()
	for _, c := range []kind.Category{kind.CategoryProject, kind.CategoryFile, kind.CategoryPackage} {
		printField("  "+c.String(), fmt.Sprintf("%d", byCategory[c]))
	}
	printField("Combinations", fmt.Sprintf("%d", inv.TotalCombinations()))
	printField("Fingerprint", inv.Fingerprint())

	if diags := inv.Diagnostics(); len(diags) > 0 {
		printHeader(fmt.Sprintf("Skipped (%d)", len(diags)))
		for _, d := range diags {
			printWarning(d.Error())
		}
	}

	if inv.TotalTemplates() == 0 {
		printWarning("no templates found")
		return
	}
	printSuccess(fmt.Sprintf("Scanned %d templates", inv.TotalTemplates()))
}
