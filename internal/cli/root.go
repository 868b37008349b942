package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
	"github.com/tacogips/xtinspect/internal/config"
	"github.com/tacogips/xtinspect/internal/debug"
	"github.com/tacogips/xtinspect/internal/template/inventory"
	"github.com/tacogips/xtinspect/internal/version"
)

// Alias version variables for compatibility
var (
	Version   = version.Version
	GitCommit = version.GitCommit
	BuildDate = version.BuildDate
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
	globalRoots   []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xtinspect",
	Short: "Inspect Xcode template bundles",
	Long: `xtinspect scans directories for Xcode template bundles (*.xctemplate),
decodes their TemplateInfo.plist descriptors, and reports what it finds.

Use "xtinspect scan" for a summary of every configured template root,
"xtinspect show <template>" for one template's options and files, and
"xtinspect ancestors <template>" for its inheritance chain.

Roots come from ~/.config/xtinspect/config.json, the XTINSPECT_ROOTS
environment variable, or repeated --root flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		stdout = cmd.OutOrStdout()
		stderr = cmd.ErrOrStderr()
		// Set debug mode
		debug.SetDebug(globalDebug || debug.EnabledFromEnv())
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().StringArrayVar(&globalRoots, FlagRoot, nil, DescRoot)

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(ancestorsCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// loadConfig loads the effective configuration and applies its output
// settings on top of the command-line flags.
func loadConfig() (*config.Config, error) {
	cfg, err := app.LoadConfig(app.LoadConfigOptions{Path: globalConfig, EnvFiles: envFiles})
	if err != nil {
		return nil, err
	}
	if !cfg.Output.Color {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	if cfg.Output.Debug {
		debug.SetDebug(true)
	}
	return cfg, nil
}

// scanInventory loads the configuration and scans its roots.
func scanInventory(ctx context.Context) (*inventory.Inventory, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	inv, err := app.ScanTemplates(ctx, app.ScanOptions{Config: cfg, Roots: globalRoots})
	if err != nil {
		return nil, nil, err
	}
	return inv, cfg, nil
}
