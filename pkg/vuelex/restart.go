package vuelex

import (
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/walteh/vuelex/pkg/token"
)

var ErrNotBoundary = errors.Base("offset is not a token boundary")

// Snapshot lexes src up to offset and returns the state there. offset must be
// the start of a token or len(src).
func Snapshot(src []byte, offset int, opts ...Option) (State, error) {
	l, err := New(src, opts...)
	if err != nil {
		return State{}, errors.Errorf("taking snapshot: %w", err)
	}
	for l.Offset() < offset {
		if _, ok := l.Next(); !ok {
			break
		}
	}
	if l.Offset() != offset {
		return State{}, errors.Errorf("taking snapshot at %d: %w", offset, ErrNotBoundary)
	}
	return l.State(), nil
}

// Resume returns a lexer that continues a document from offset in state st.
// suffix is the document from offset on; the returned tokens carry absolute
// offsets.
func Resume(st State, offset int, suffix []byte, opts ...Option) (*Lexer, error) {
	if offset < 0 {
		return nil, errors.Errorf("resuming at %d: negative offset", offset)
	}
	if suffix == nil {
		return nil, errors.Errorf("resuming at %d: %w", offset, ErrNilInput)
	}
	if err := st.Validate(); err != nil {
		return nil, errors.Errorf("resuming at %d: %w", offset, err)
	}
	return newLexer(string(suffix), offset, st, buildOptions(opts)), nil
}

// VerifyRestart checks that lexing src from a token start, in the state
// recorded there, reproduces the rest of the full lex. With everyToken it
// restarts at every token, otherwise only where the recorded state is the
// initial state. States go through Encode and Decode on the way. All
// mismatches are returned together.
func VerifyRestart(src []byte, everyToken bool, opts ...Option) error {
	tokens, states, err := LexWithStates(src, opts...)
	if err != nil {
		return errors.Errorf("lexing: %w", err)
	}

	var errs error
	for i, tok := range tokens {
		if !everyToken && !states[i].IsInitial() {
			continue
		}
		st, err := Decode(states[i].Encode())
		if err != nil {
			errs = multierr.Append(errs, errors.Errorf("token %d (%s): %w", i, tok, err))
			continue
		}
		if err := verifyFrom(src, st, tok.Start, tokens[i:], opts); err != nil {
			errs = multierr.Append(errs, errors.Errorf("restart at token %d (%s): %w", i, tok, err))
		}
	}
	return errs
}

func verifyFrom(src []byte, st State, offset int, want []token.Token, opts []Option) error {
	l, err := Resume(st, offset, src[offset:], opts...)
	if err != nil {
		return err
	}
	n := 0
	for got := range l.All() {
		if n >= len(want) {
			return errors.Errorf("extra token %s", got)
		}
		if got != want[n] {
			return errors.Errorf("token %d: got %s, want %s", n, got, want[n])
		}
		n++
	}
	if n != len(want) {
		return errors.Errorf("got %d tokens, want %d", n, len(want))
	}
	return nil
}
