package jsontint

import (
	"github.com/arthur-debert/jsontint/internal/version"
	"github.com/arthur-debert/jsontint/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// settingsFlags are the flags that override configuration values. They are
// only applied when set on the command line.
type settingsFlags struct {
	compact  bool
	indent   int
	spacing  bool
	color    string
	theme    string
	sink     string
	maxDepth int
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		flags     settingsFlags
	)

	rootCmd := &cobra.Command{
		Use:     "jsontint [file...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLoggerWithWriter(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.color, "color", "auto", MsgFlagColor)
	pf.StringVarP(&flags.theme, "theme", "t", "default", MsgFlagTheme)
	pf.StringVar(&flags.sink, "sink", "term", MsgFlagSink)

	// Layout flags
	f := rootCmd.Flags()
	f.BoolVarP(&flags.compact, "compact", "c", false, MsgFlagCompact)
	f.IntVar(&flags.indent, "indent", 2, MsgFlagIndent)
	f.BoolVar(&flags.spacing, "spacing", false, MsgFlagSpacing)
	f.IntVar(&flags.maxDepth, "max-depth", 0, MsgFlagMaxDepth)

	rootCmd.AddCommand(newThemesCmd(&flags))
	rootCmd.AddCommand(newConfigCmd(&flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())
	addTopics(rootCmd)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(
				formatVersion(version.Version, version.Commit, version.Date)))
			return err
		},
	}
}
