package check_restart

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/config"
	"github.com/walteh/vuelex/pkg/finder"
	"github.com/walteh/vuelex/pkg/vuelex"
)

// ErrRestartMismatch is returned when any file fails verification.
var ErrRestartMismatch = errors.Base("restart verification failed")

type Handler struct {
	fs         afero.Fs
	everyToken bool
}

func NewCheckRestartCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "check-restart [file|dir|glob]...",
		Short: "verify that lexing resumed from a recorded state matches a full lex",
	}

	cmd.Flags().BoolVar(&me.everyToken, "every-token", true, "restart at every token instead of only at top-level boundaries")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args, cmd.OutOrStdout())
	}

	return cmd
}

func (me *Handler) Run(ctx context.Context, args []string, out io.Writer) error {
	cfg := config.Ctx(ctx)

	opts, err := cfg.LexOptions(ctx)
	if err != nil {
		return errors.Errorf("building lexer options: %w", err)
	}

	if len(args) == 0 {
		args = cfg.Include
	}

	paths, err := finder.NewFinder(me.fs).Find(ctx, args)
	if err != nil {
		return errors.Errorf("finding files: %w", err)
	}

	failed := 0
	for _, p := range paths {
		src, err := afero.ReadFile(me.fs, p)
		if err != nil {
			return errors.Errorf("reading %s: %w", p, err)
		}

		if err := vuelex.VerifyRestart(src, me.everyToken, opts...); err != nil {
			failed++
			zerolog.Ctx(ctx).Error().Err(err).Str("file", p).Msg("restart mismatch")
			fmt.Fprintf(out, "FAIL %s\n%s\n", p, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", p)
	}

	if failed > 0 {
		return errors.Errorf("%d of %d files: %w", failed, len(paths), ErrRestartMismatch)
	}
	return nil
}
