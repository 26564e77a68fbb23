// Package semtok turns the lexer's token stream into highlight tokens and
// encodes them in the relative form used by LSP semantic tokens.
package semtok

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/vuelex/pkg/position"
	"github.com/walteh/vuelex/pkg/token"
	"github.com/walteh/vuelex/pkg/vuelex"
)

// GetTokensForText lexes the whole document and returns its highlight tokens.
func GetTokensForText(ctx context.Context, content []byte, opts ...vuelex.Option) ([]Token, error) {
	toks, err := vuelex.Lex(content, opts...)
	if err != nil {
		return nil, errors.Errorf("lexing: %w", err)
	}

	out := convert(content, toks)
	zerolog.Ctx(ctx).Debug().Int("tokens", len(toks)).Int("highlighted", len(out)).Msg("semantic tokens")
	return out, nil
}

// GetTokensForRange lexes only the tokens starting inside ranged. st must be
// the lexer state at ranged.Offset, as returned by vuelex.Snapshot or
// recorded by vuelex.LexWithStates, so the text before the range is never
// scanned again.
func GetTokensForRange(ctx context.Context, content []byte, st vuelex.State, ranged position.RawPosition, opts ...vuelex.Option) ([]Token, error) {
	if ranged.Offset < 0 || ranged.Offset > len(content) {
		return nil, errors.Errorf("range offset %d outside of [0, %d]", ranged.Offset, len(content))
	}

	l, err := vuelex.Resume(st, ranged.Offset, content[ranged.Offset:], opts...)
	if err != nil {
		return nil, errors.Errorf("resuming at %d: %w", ranged.Offset, err)
	}

	end := ranged.GetEndPosition().Offset
	var toks []token.Token
	for tok := range l.All() {
		if tok.Start >= end {
			break
		}
		toks = append(toks, tok)
	}

	out := convert(content, toks)
	zerolog.Ctx(ctx).Debug().Int("from", ranged.Offset).Int("to", end).Int("highlighted", len(out)).Msg("semantic tokens for range")
	return out, nil
}

func convert(content []byte, toks []token.Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		typ, ok := TypeOf(tok.Kind)
		if !ok {
			continue
		}
		out = append(out, Token{
			Type:     typ,
			Modifier: ModifierOf(tok.Dialect),
			Range:    position.NewBasicPosition(tok.Text(content), tok.Start),
		})
	}
	return out
}

// Encode returns the LSP relative encoding of tokens: five integers per
// token (delta line, delta start, length, type, modifiers). Lines are zero
// based and columns and lengths count UTF-16 code units, as LSP clients
// expect. Tokens spanning several lines are split at each newline. Tokens
// must be in document order.
func Encode(tokens []Token, idx *position.Index) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevChar := 0, 0

	for _, tok := range tokens {
		offset := tok.Range.Offset
		for _, piece := range strings.SplitAfter(tok.Range.Text, "\n") {
			text := strings.TrimRight(piece, "\r\n")
			start := idx.UTF16Place(offset)
			end := idx.UTF16Place(offset + len(text))
			offset += len(piece)

			length := end.Character - start.Character
			if length <= 0 {
				continue
			}

			line, char := start.Line-1, start.Character-1
			deltaChar := char
			if line == prevLine {
				deltaChar = char - prevChar
			}
			data = append(data,
				uint32(line-prevLine),
				uint32(deltaChar),
				uint32(length),
				uint32(tok.Type),
				uint32(tok.Modifier),
			)
			prevLine, prevChar = line, char
		}
	}

	return data
}
