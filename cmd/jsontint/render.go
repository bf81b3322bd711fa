package jsontint

import (
	"io"
	"os"

	"github.com/arthur-debert/jsontint/pkg/errors"
	"github.com/arthur-debert/jsontint/pkg/logging"
	"github.com/arthur-debert/jsontint/pkg/render"
	"github.com/arthur-debert/jsontint/pkg/sink"
	"github.com/spf13/cobra"
)

// runRender prints every document from the named inputs, or from standard
// input when none are given.
func runRender(cmd *cobra.Command, args []string, flags *settingsFlags) error {
	logger := logging.GetLogger("cli")

	cfg, th, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := sink.New(out, cfg.ColorMode(), cfg.SinkKind())
	r := render.New(th, cfg.RenderOptions())

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		logger.Debug().Str("input", name).Str("theme", th.Name()).Msg("Rendering input")
		done := logging.LogOperationStart(logger, "render "+name)
		err := renderInput(cmd, r, s, name)
		done()
		if err != nil {
			return err
		}
	}
	return nil
}

func renderInput(cmd *cobra.Command, r *render.Renderer, s sink.Sink, name string) error {
	var in io.Reader
	if name == "-" {
		in = cmd.InOrStdin()
		name = "<stdin>"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, MsgErrOpenInput, name).
				WithDetail("file", name)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	if err := r.RenderStream(s, in); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), MsgErrRenderInput, name).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("file", name)
	}
	return nil
}
