package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/xtinspect/internal/app"
	"github.com/tacogips/xtinspect/internal/debug"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show one template",
	Long: `Show a template's fields, ancestors, options, and file structure.

The template may be given as an identifier, a kind identifier, a bundle
path, a bundle directory name, or a display name.

Examples:
  xtinspect show com.apple.dt.unit.multiPlatform.app
  xtinspect show "Swift File"
  xtinspect show App.xctemplate --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, FlagRaw, false, DescRaw)
}

func runShow(cmd *cobra.Command, args []string) error {
	inv, _, err := scanInventory(cmd.Context())
	if err != nil {
		return err
	}

	detail, err := app.ShowTemplate(inv, args[0])
	if err != nil {
		return err
	}
	t := detail.Template
	debug.DebugDump("[cli] Template", *t)

	if showRaw {
		printHighlighted(t.RawContent)
		return nil
	}

	printHeader(t.DisplayName())
	printField("Path", t.Path)
	printField("Kind", fmt.Sprintf("%s (%s)", t.Kind.DisplayName(), t.Kind.String()))
	printField("Category", t.Kind.Category().String())
	if t.Identifier != "" {
		printField("Identifier", t.Identifier)
	}
	printField("Combinations", fmt.Sprintf("%d", t.TotalCombinations))
	printField("Format", t.RawContentType)

	if len(detail.Ancestors) > 0 {
		printHeader("Ancestors")
		for _, a := range detail.Ancestors {
			printInfo("  " + ancestorLabel(a.DisplayName, a.Kind.Raw, a.IsLocal()))
		}
	}

	if len(t.Options) > 0 {
		printHeader("Options")
		for _, opt := range t.Options {
			name := opt.Identifier
			if opt.Name != "" {
				name = fmt.Sprintf("%s (%s)", opt.Name, opt.Identifier)
			}
			line := fmt.Sprintf("  %s %s", paint(labelStyle, name), paint(mutedStyle, "["+string(opt.Type)+"]"))
			if opt.Default != "" {
				line += " default=" + opt.Default
			}
			printInfo(line)
			if len(opt.Choices) > 0 {
				printInfo("      " + strings.Join(opt.Choices, " | "))
			}
		}
	}

	if len(t.FileStructure) > 0 {
		printHeader(fmt.Sprintf("Files (%d dirs, %d files)", detail.Dirs, detail.Files))
		printFileTree(t.FileStructure, "  ")
	}
	return nil
}

// ancestorLabel formats one ancestor for display.
func ancestorLabel(name, raw string, local bool) string {
	if local {
		return fmt.Sprintf("%s %s", name, paint(mutedStyle, raw))
	}
	return fmt.Sprintf("%s %s %s", name, paint(mutedStyle, raw), paint(warningStyle, "(external)"))
}
