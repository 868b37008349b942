package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"github.com/tacogips/xtinspect/internal/template/model"
)

// Destinations for command output. Set from the running command so tests
// can capture them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint renders text with style unless color is disabled.
func paint(style lipgloss.Style, text string) string {
	if globalNoColor {
		return text
	}
	return style.Render(text)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(successStyle, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(warningStyle, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", paint(errorStyle, "✗"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", paint(headerStyle, "=== "+title+" ==="))
}

// printField prints an aligned "label: value" line.
func printField(label, value string) {
	if globalQuiet {
		return
	}
	padded := fmt.Sprintf("%-14s", label+":")
	fmt.Fprintf(stdout, "  %s %s\n", paint(labelStyle, padded), value)
}

// printFileTree prints nodes with box-drawing connectors.
func printFileTree(nodes []model.FileNode, indent string) {
	if globalQuiet {
		return
	}
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, next := "├── ", "│   "
		if last {
			connector, next = "└── ", "    "
		}
		name := n.Name
		if n.IsDirectory {
			name = paint(labelStyle, name+"/")
		}
		fmt.Fprintf(stdout, "%s%s%s\n", indent, paint(mutedStyle, connector), name)
		if n.IsDirectory {
			printFileTree(n.Children, indent+next)
		}
	}
}

// printHighlighted prints a property list document, syntax highlighted
// when color is enabled.
func printHighlighted(source string) {
	if globalQuiet {
		return
	}
	if globalNoColor || quick.Highlight(stdout, source, "xml", "terminal256", "monokai") != nil {
		fmt.Fprint(stdout, source)
	}
	if !strings.HasSuffix(source, "\n") {
		fmt.Fprintln(stdout)
	}
}

// truncate shortens s to at most width display cells.
func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// column pads s to width display cells.
func column(s string, width int) string {
	s = truncate(s, width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
