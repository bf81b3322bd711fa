package jsontint

import (
	"fmt"

	"github.com/arthur-debert/jsontint/pkg/config"
	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/theme"
	"github.com/spf13/cobra"
)

// overrides collects the flags the user actually set, keyed like the
// configuration file.
func (f *settingsFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := make(map[string]interface{})
	set := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if set("color") {
		o["color"] = f.color
	}
	if set("theme") {
		o["theme"] = f.theme
	}
	if set("sink") {
		o["sink"] = f.sink
	}
	if set("compact") {
		o["render.compact"] = f.compact
	}
	if set("indent") {
		o["render.indent"] = f.indent
	}
	if set("spacing") {
		o["render.spacing"] = f.spacing
	}
	if set("max-depth") {
		o["render.max_depth"] = f.maxDepth
	}
	return o
}

// loadSettings resolves configuration and theme for cmd.
func loadSettings(cmd *cobra.Command, f *settingsFlags) (*config.Config, theme.Theme, error) {
	cfg, err := config.Load(f.overrides(cmd))
	if err != nil {
		return nil, theme.Theme{}, err
	}
	th, err := theme.Resolve(cfg.Theme)
	if err != nil {
		return nil, theme.Theme{}, errors.Wrap(err, errors.GetErrorCode(err), MsgErrTheme)
	}
	return cfg, th, nil
}

func formatVersion(v, commit, date string) string {
	return fmt.Sprintf(MsgVersionFormat, v, commit, date)
}
