package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long: `Inspect or create the xtinspect configuration file.

The file lives at ~/.config/xtinspect/config.json unless --config is given.
It may contain // and /* */ comments.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to the configuration path.

Examples:
  xtinspect config init
  xtinspect config init --config ./xtinspect.json --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and XTINSPECT_* environment
overrides are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configForce, FlagForce, false, DescForce)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := app.InitConfig(app.InitConfigOptions{Path: globalConfig, Force: configForce})
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Wrote %s", path))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
