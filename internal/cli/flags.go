package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput   = "output"
	FlagConfig   = "config"
	FlagRoot     = "root"
	FlagFormat   = "format"
	FlagCategory = "category"
	FlagRaw      = "raw"
	FlagForce    = "force"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"
	FlagWatch    = "watch"
	FlagInterval = "interval"

	// Flag descriptions
	DescOutput   = "Write to this file instead of stdout"
	DescConfig   = "Path to config file"
	DescRoot     = "Template root directory (repeatable, replaces configured roots)"
	DescCategory = "Only list templates of this category (project, file, package)"
	DescRaw      = "Print the descriptor document"
	DescForce    = "Force overwrite"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
	DescWatch    = "Rescan periodically and print a summary when templates change"
	DescInterval = "Rescan period for --watch"
)

// envFiles are the dotenv files read before configuration overrides.
var envFiles = []string{".env"}
