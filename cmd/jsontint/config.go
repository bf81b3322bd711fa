package jsontint

import (
	"fmt"

	"github.com/arthur-debert/jsontint/pkg/config"
	"github.com/arthur-debert/jsontint/pkg/render"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/arthur-debert/jsontint/pkg/value"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *settingsFlags) *cobra.Command {
	var (
		initFile bool
		showPath bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if initFile {
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			}
			if showPath {
				_, err := fmt.Fprintln(out, config.Path())
				return err
			}

			cfg, th, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			s := sink.New(out, cfg.ColorMode(), cfg.SinkKind())
			return render.Render(configValue(cfg), th, s, render.Options{Indent: 2, Newline: true})
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)
	return cmd
}

// configValue lays the configuration out in file order.
func configValue(cfg *config.Config) value.Value {
	file := value.String(MsgNoConfigFile)
	if cfg.Path != "" {
		file = value.String(cfg.Path)
	}
	return value.Object(
		value.M("file", file),
		value.M("color", value.String(cfg.Color)),
		value.M("sink", value.String(cfg.Sink)),
		value.M("theme", value.String(cfg.Theme)),
		value.M("render", value.Object(
			value.M("indent", value.Int(int64(cfg.Render.Indent))),
			value.M("compact", value.Bool(cfg.Render.Compact)),
			value.M("spacing", value.Bool(cfg.Render.Spacing)),
			value.M("max_depth", value.Int(int64(cfg.Render.MaxDepth))),
		)),
	)
}
