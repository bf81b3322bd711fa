package jsontint

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Pretty-print JSON with syntax colors"
	MsgRootLong     = `jsontint reads JSON documents from files or standard input and writes them
back as indented or compact JSON, coloring keys, strings, numbers, booleans
and null according to a theme.

With no file arguments, or with "-", standard input is read. Several
documents may follow each other in one input; each is printed on its own.

Color is used only when writing to a color terminal unless --color=always
is given. Stripping the color sequences always leaves valid JSON.`
	MsgThemesShort  = "List built-in themes"
	MsgThemesLong   = "List the built-in themes and the style each gives to every token role."
	MsgConfigShort  = "Show the effective configuration"
	MsgConfigLong   = "Print the configuration after defaults, the config file, JSONTINT_* variables and flags have been applied."
	MsgVersionShort = "Print version information"
	MsgTopicsShort  = "List help topics"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagCompact  = "Print each document on a single line"
	MsgFlagIndent   = "Spaces per nesting level in pretty output"
	MsgFlagSpacing  = "Add a space after ':' and ',' in compact output"
	MsgFlagColor    = "When to use color: auto, always or never"
	MsgFlagTheme    = "Theme name (default, jq, plain) or path to a .yaml/.toml theme file"
	MsgFlagSink     = "Color backend: term, lipgloss, markup or plain"
	MsgFlagMaxDepth = "Refuse documents nested deeper than this (0 = no limit)"
	MsgFlagPreview  = "Render a sample document with each theme"
	MsgFlagExport   = "Print the named theme as a YAML theme file"
	MsgFlagInit     = "Print a starter config file with every setting commented out"
	MsgFlagPath     = "Print the config file location"

	// Output
	MsgVersionFormat = "jsontint version %s\n  commit: %s\n  built:  %s\n"
	MsgNoConfigFile  = "(no config file, using defaults)"

	// Error messages
	MsgErrOpenInput   = "failed to open %s"
	MsgErrRenderInput = "failed to render %s"
	MsgErrTheme       = "failed to load theme"
	MsgErrExport      = "failed to export theme %s"
	MsgErrUnknownName = "unknown theme %q"
)
