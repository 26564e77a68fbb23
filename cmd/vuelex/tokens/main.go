package tokens

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/config"
	"github.com/walteh/vuelex/pkg/dump"
	"github.com/walteh/vuelex/pkg/finder"
	"github.com/walteh/vuelex/pkg/position"
	"github.com/walteh/vuelex/pkg/vuelex"
)

// StdinPath is the argument that reads the component from standard input.
const StdinPath = "-"

type Handler struct {
	fs        afero.Fs
	format    string
	positions bool
	tabWidth  int
}

func NewTokensCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "tokens [file|dir|glob|-]...",
		Short: "print the token stream of Vue components",
	}

	cmd.Flags().StringVar(&me.format, "format", "", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&me.positions, "positions", false, "include line and column ranges")
	cmd.Flags().IntVar(&me.tabWidth, "tab-width", 0, "columns per tab, defaults to the .editorconfig tab_width")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return cmd
}

type input struct {
	path string
	src  []byte
}

func (me *Handler) Run(ctx context.Context, args []string, stdin io.Reader, out io.Writer) error {
	cfg := config.Ctx(ctx)

	format := cfg.Format
	if me.format != "" {
		format = me.format
	}
	f, err := dump.ParseFormat(format)
	if err != nil {
		return errors.Errorf("parsing format: %w", err)
	}
	positions := me.positions || cfg.Positions

	opts, err := cfg.LexOptions(ctx)
	if err != nil {
		return errors.Errorf("building lexer options: %w", err)
	}

	inputs, err := me.inputs(ctx, cfg, args, stdin)
	if err != nil {
		return err
	}

	files := make([]dump.File, 0, len(inputs))
	for _, in := range inputs {
		toks, err := vuelex.Lex(in.src, opts...)
		if err != nil {
			return errors.Errorf("lexing %s: %w", in.path, err)
		}

		var idx *position.Index
		if positions {
			idx = position.NewIndex(in.src, me.tabWidthFor(ctx, in.path))
		}

		zerolog.Ctx(ctx).Debug().Str("file", in.path).Int("tokens", len(toks)).Msg("lexed")

		files = append(files, dump.File{Path: in.path, Tokens: dump.Entries(in.src, toks, idx)})
	}

	if len(files) == 1 {
		return dump.Write(out, f, files[0].Tokens)
	}
	return dump.WriteFiles(out, f, files)
}

func (me *Handler) inputs(ctx context.Context, cfg *config.Config, args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 1 && args[0] == StdinPath {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Errorf("reading stdin: %w", err)
		}
		return []input{{path: StdinPath, src: src}}, nil
	}

	if len(args) == 0 {
		args = cfg.Include
	}

	paths, err := finder.NewFinder(me.fs).Find(ctx, args)
	if err != nil {
		return nil, errors.Errorf("finding files: %w", err)
	}

	out := make([]input, 0, len(paths))
	for _, p := range paths {
		src, err := afero.ReadFile(me.fs, p)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", p, err)
		}
		out = append(out, input{path: p, src: src})
	}
	return out, nil
}

func (me *Handler) tabWidthFor(ctx context.Context, path string) int {
	if me.tabWidth > 0 {
		return me.tabWidth
	}
	if path == StdinPath {
		return position.DefaultTabWidth
	}
	def, warning, err := loadEditorconfig(me.fs, path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("file", path).Msg("reading editorconfig")
		return position.DefaultTabWidth
	}
	if warning != nil {
		zerolog.Ctx(ctx).Debug().Err(warning).Str("file", path).Msg("editorconfig warnings")
	}
	if def.TabWidth > 0 {
		return def.TabWidth
	}
	return position.DefaultTabWidth
}
