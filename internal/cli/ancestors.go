package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
	"github.com/tacogips/xtinspect/internal/template/ancestry"
)

// ancestorsCmd represents the ancestors command
var ancestorsCmd = &cobra.Command{
	Use:   "ancestors <template>",
	Short: "Show a template's ancestor tree",
	Long: fmt.Sprintf(`Show the ancestors a template inherits from, expanded recursively.

Ancestors found in the inventory are expanded further; ancestors defined
outside the scanned roots are marked external. Expansion stops after %d
levels, so self-referencing templates terminate.

Examples:
  xtinspect ancestors com.apple.dt.unit.multiPlatform.app`, ancestry.MaxDepth),
	Args: cobra.ExactArgs(1),
	RunE: runAncestors,
}

func runAncestors(cmd *cobra.Command, args []string) error {
	inv, _, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	t, nodes, err := app.AncestorTree(inv, args[0])
	if err != nil {
		return err
	}

	printInfo(paint(headerStyle, t.DisplayName()))
	if len(nodes) == 0 {
		printInfo(paint(mutedStyle, "  (no ancestors)"))
		return nil
	}
	printAncestorNodes(nodes, "")
	return nil
}

func printAncestorNodes(nodes []app.AncestorNode, indent string) {
	for i, n := range nodes {
		connector, next := "├── ", "│   "
		if i == len(nodes)-1 {
			connector, next = "└── ", "    "
		}
		label := ancestorLabel(n.Ancestor.DisplayName, n.Ancestor.Kind.Raw, n.Ancestor.IsLocal())
		if n.Truncated {
			label += " " + paint(warningStyle, "(depth limit)")
		}
		printInfo(indent + paint(mutedStyle, connector) + label)
		printAncestorNodes(n.Children, indent+next)
	}
}
