package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/template/kind"
)

// kindsCmd represents the kinds command
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the known template kinds",
	Long: `List every kind identifier xtinspect recognizes, grouped by category.
Identifiers not in this list are still accepted and classified by name.`,
	Args: cobra.NoArgs,
	RunE: runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	all := kind.All()
	for _, c := range []kind.Category{kind.CategoryProject, kind.CategoryFile, kind.CategoryPackage} {
		printHeader(c.String())
		for _, k := range all {
			if k.Category() != c {
				continue
			}
			tag := ""
			switch {
			case k.IsBase():
				tag = paint(mutedStyle, " base")
			case k.IsUtility():
				tag = paint(mutedStyle, " utility")
			}
			printInfo("  " + column(k.DisplayName(), 30) + " " + k.Raw + tag)
		}
	}
	return nil
}
