package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Long: `List every template in the inventory, ordered by path.

Examples:
  xtinspect list
  xtinspect list --category file`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listCategory string

func init() {
	listCmd.Flags().StringVar(&listCategory, FlagCategory, "", DescCategory)
}

func runList(cmd *cobra.Command, args []string) error {
	inv, _, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	templates, err := app.ListTemplates(inv, listCategory)
	if err != nil {
		return err
	}

	if len(templates) == 0 {
		printWarning("no templates found")
		return nil
	}

	printInfo(paint(headerStyle, column("NAME", 32)+" "+column("CATEGORY", 9)+" "+column("OPTIONS", 8)+" PATH"))
	for _, t := range templates {
		printInfo(fmt.Sprintf("%s %s %s %s",
			column(t.DisplayName(), 32),
			column(t.Kind.Category().String(), 9),
			column(fmt.Sprintf("%d", t.TotalCombinations), 8),
			paint(mutedStyle, t.Path)))
	}
	return nil
}
