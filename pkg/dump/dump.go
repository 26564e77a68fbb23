// Package dump renders token streams for people and tools.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/vuelex/pkg/position"
	"github.com/walteh/vuelex/pkg/token"
)

type Format string

const (
	// FormatText prints one `KIND ('text')` line per token.
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. The empty string is FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q", s)
	}
}

// Entry is a token with its text, as written by the json and yaml formats.
type Entry struct {
	Kind    string          `json:"kind" yaml:"kind"`
	Dialect string          `json:"dialect" yaml:"dialect"`
	Start   int             `json:"start" yaml:"start"`
	End     int             `json:"end" yaml:"end"`
	Text    string          `json:"text" yaml:"text"`
	Range   *position.Range `json:"range,omitempty" yaml:"range,omitempty"`
}

// Entries pairs tokens with their text. When idx is not nil every entry also
// gets its line and column range.
func Entries(src []byte, tokens []token.Token, idx *position.Index) []Entry {
	out := make([]Entry, 0, len(tokens))
	for _, tok := range tokens {
		e := Entry{
			Kind:    tok.Kind.String(),
			Dialect: tok.Dialect.String(),
			Start:   tok.Start,
			End:     tok.End,
			Text:    tok.Text(src),
		}
		if idx != nil {
			r := idx.Range(position.NewBasicPosition(e.Text, tok.Start))
			e.Range = &r
		}
		out = append(out, e)
	}
	return out
}

var escaper = strings.NewReplacer("\n", `\n`, "\t", `\t`, "\r", `\r`)

// TextLine renders a single entry in the text format.
func TextLine(e Entry) string {
	line := fmt.Sprintf("%s ('%s')", e.Kind, escaper.Replace(e.Text))
	if e.Range != nil {
		line = e.Range.String() + " " + line
	}
	return line
}

// Text renders tokens in the text format, one per line.
func Text(src []byte, tokens []token.Token) string {
	var sb strings.Builder
	for _, e := range Entries(src, tokens, nil) {
		sb.WriteString(TextLine(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write encodes entries to w in format f.
func Write(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, TextLine(e)); err != nil {
				return errors.Errorf("writing text: %w", err)
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Errorf("closing yaml encoder: %w", err)
		}
		return nil
	default:
		return errors.Errorf("unknown output format %q", f)
	}
}

// File groups the entries of one input when several are dumped together.
type File struct {
	Path   string  `json:"path" yaml:"path"`
	Tokens []Entry `json:"tokens" yaml:"tokens"`
}

// WriteFiles encodes files to w in format f. The text format prints a
// `== path ==` line before each file's tokens.
func WriteFiles(w io.Writer, f Format, files []File) error {
	switch f {
	case FormatText, "":
		for _, file := range files {
			if _, err := fmt.Fprintf(w, "== %s ==\n", file.Path); err != nil {
				return errors.Errorf("writing text: %w", err)
			}
			if err := Write(w, f, file.Tokens); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(files); err != nil {
			return errors.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(files); err != nil {
			return errors.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return errors.Errorf("closing yaml encoder: %w", err)
		}
		return nil
	default:
		return errors.Errorf("unknown output format %q", f)
	}
}
