package jsontint

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/jsontint/pkg/cobrax/topics"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// addTopics installs the help topics and a "topics" shortcut command.
func addTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	tm, err := topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: topics.RendererFor(rootCmd.OutOrStdout()),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tm.WriteList(cmd.OutOrStdout(), rootCmd.Name())
		},
	})
}
