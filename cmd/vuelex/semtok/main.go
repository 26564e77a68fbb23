package semtok

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/config"
	"github.com/walteh/vuelex/pkg/position"
	"github.com/walteh/vuelex/pkg/semtok"
	"github.com/walteh/vuelex/pkg/vuelex"
)

type Handler struct {
	fs     afero.Fs
	offset int
	length int
}

func NewSemtokCommand(fs afero.Fs) *cobra.Command {
	me := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "semtok <file>",
		Short: "print LSP semantic tokens for a Vue component",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().IntVar(&me.offset, "offset", 0, "byte offset of the first token to highlight, must be a token start")
	cmd.Flags().IntVar(&me.length, "length", -1, "number of bytes to highlight, -1 for the rest of the file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return me.Run(cmd.Context(), args[0], cmd.OutOrStdout())
	}

	return cmd
}

// Legend names the token types and modifiers referenced by Data.
type Legend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

// Output mirrors the LSP SemanticTokens result plus its legend.
type Output struct {
	Legend Legend   `json:"legend"`
	Data   []uint32 `json:"data"`
}

func (me *Handler) Run(ctx context.Context, path string, out io.Writer) error {
	cfg := config.Ctx(ctx)

	opts, err := cfg.LexOptions(ctx)
	if err != nil {
		return errors.Errorf("building lexer options: %w", err)
	}

	src, err := afero.ReadFile(me.fs, path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}

	var toks []semtok.Token
	if me.offset == 0 && me.length < 0 {
		toks, err = semtok.GetTokensForText(ctx, src, opts...)
	} else {
		toks, err = me.ranged(ctx, src, opts)
	}
	if err != nil {
		return err
	}

	types, modifiers := semtok.Legend()
	result := Output{
		Legend: Legend{TokenTypes: types, TokenModifiers: modifiers},
		Data:   semtok.Encode(toks, position.NewIndex(src, 0)),
	}

	enc := json.NewEncoder(out)
	if err := enc.Encode(result); err != nil {
		return errors.Errorf("encoding semantic tokens: %w", err)
	}
	return nil
}

func (me *Handler) ranged(ctx context.Context, src []byte, opts []vuelex.Option) ([]semtok.Token, error) {
	end := len(src)
	if me.length >= 0 {
		end = min(len(src), me.offset+me.length)
	}
	if me.offset < 0 || me.offset > end {
		return nil, errors.Errorf("invalid range %d+%d", me.offset, me.length)
	}

	st, err := vuelex.Snapshot(src, me.offset, opts...)
	if err != nil {
		return nil, errors.Errorf("finding state at %d: %w", me.offset, err)
	}

	return semtok.GetTokensForRange(ctx, src, st, position.NewBasicPosition(string(src[me.offset:end]), me.offset), opts...)
}
