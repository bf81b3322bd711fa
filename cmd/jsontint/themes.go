package jsontint

import (
	"fmt"
	"io"

	"github.com/arthur-debert/jsontint/pkg/config"
	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/render"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/arthur-debert/jsontint/pkg/value"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// sampleDocument shows every role at least once.
var sampleDocument = value.Object(
	value.M("name", value.String("jsontint")),
	value.M("version", value.Number("1.0")),
	value.M("stable", value.Bool(true)),
	value.M("license", value.Null()),
	value.M("tags", value.Array(value.String("json"), value.String("cli"))),
)

func newThemesCmd(flags *settingsFlags) *cobra.Command {
	var (
		preview bool
		export  string
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: MsgThemesShort,
		Long:  MsgThemesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if export != "" {
				return exportTheme(out, export)
			}

			cfg, err := config.Load(flags.overrides(cmd))
			if err != nil {
				return err
			}
			if preview {
				return previewThemes(out, cfg)
			}
			return writeThemeTable(out)
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, MsgFlagPreview)
	cmd.Flags().StringVar(&export, "export", "", MsgFlagExport)
	return cmd
}

// themeTableData returns one row per built-in theme and one column per role.
func themeTableData() pterm.TableData {
	header := []string{"theme"}
	for _, role := range theme.AllRoles() {
		header = append(header, role.String())
	}

	data := pterm.TableData{header}
	for _, name := range theme.Names() {
		th, _ := theme.Named(name)
		row := []string{name}
		for _, role := range theme.AllRoles() {
			row = append(row, th.StyleFor(role).String())
		}
		data = append(data, row)
	}
	return data
}

func writeThemeTable(w io.Writer) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(themeTableData()).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

func previewThemes(w io.Writer, cfg *config.Config) error {
	opts := cfg.RenderOptions()
	s := sink.New(w, cfg.ColorMode(), cfg.SinkKind())
	for _, name := range theme.Names() {
		th, _ := theme.Named(name)
		if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
		if err := render.Render(sampleDocument, th, s, opts); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func exportTheme(w io.Writer, name string) error {
	th, ok := theme.Named(name)
	if !ok {
		return errors.Newf(errors.ErrThemeInvalid, MsgErrUnknownName, name).
			WithDetail("available", theme.Names())
	}
	data, err := yaml.Marshal(theme.ToFile(th))
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, MsgErrExport, name)
	}
	_, err = w.Write(data)
	return err
}
