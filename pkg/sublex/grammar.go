// Package sublex holds the grammars used for embedded regions: script, style
// and markup shorthand bodies, attribute expressions and interpolations.
//
// A Grammar is a set of participle lexer rule tables, one per sub-state. It is
// driven one token at a time over a clipped view of the document, so the
// caller owns the only state there is (the sub-state index) and can restart
// at any token boundary.
package sublex

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/walteh/vuelex/pkg/token"
)

// Stay keeps the current sub-state after a rule matches.
const Stay = -1

// Rule is a single pattern of a grammar state. Patterns must not match the
// empty string.
type Rule struct {
	Kind    token.Kind
	Pattern string
	// Next is the sub-state to switch to after a match, or Stay.
	Next int
	// Words reclassifies exact matches, used to split keywords from identifiers.
	Words map[string]token.Kind
}

// R is shorthand for a rule that stays in the current state.
func R(kind token.Kind, pattern string) Rule {
	return Rule{Kind: kind, Pattern: pattern, Next: Stay}
}

// Match is the result of lexing one token.
type Match struct {
	Kind token.Kind
	Len  int
	Next uint8
}

type compiledState struct {
	def   *lexer.StatefulDefinition
	rules map[lexer.TokenType]Rule
}

// Grammar is an immutable, compiled set of rule tables.
type Grammar struct {
	name   string
	states []compiledState
}

// MustCompile builds a grammar whose sub-state i uses states[i]. It panics on
// invalid patterns, like lexer.MustStateful.
func MustCompile(name string, states ...[]Rule) *Grammar {
	g := &Grammar{name: name}
	for si, rules := range states {
		simple := make([]lexer.SimpleRule, 0, len(rules))
		names := make([]string, 0, len(rules))
		for ri, rule := range rules {
			if rule.Next >= len(states) {
				panic(fmt.Sprintf("sublex: grammar %s state %d rule %d: next state %d out of range", name, si, ri, rule.Next))
			}
			n := fmt.Sprintf("%s%d", rule.Kind, ri)
			names = append(names, n)
			simple = append(simple, lexer.SimpleRule{Name: n, Pattern: rule.Pattern})
		}

		def := lexer.MustSimple(simple)
		symbols := def.Symbols()

		cs := compiledState{def: def, rules: make(map[lexer.TokenType]Rule, len(rules))}
		for ri, n := range names {
			cs.rules[symbols[n]] = rules[ri]
		}
		g.states = append(g.states, cs)
	}
	return g
}

// Name is used in logs and test output.
func (g *Grammar) Name() string {
	return g.name
}

// States returns the number of sub-states.
func (g *Grammar) States() int {
	return len(g.states)
}

// Next lexes a single token at the start of src in sub-state sub. src must
// already be clipped to the region end. Len is zero only when src is empty.
func (g *Grammar) Next(src string, sub uint8) Match {
	if src == "" {
		return Match{Next: sub}
	}
	if int(sub) >= len(g.states) {
		sub = 0
	}
	st := g.states[sub]

	lx, err := st.def.LexString("", src)
	if err != nil {
		return errorMatch(src, sub)
	}
	tok, err := lx.Next()
	if err != nil || tok.EOF() || tok.Value == "" {
		return errorMatch(src, sub)
	}

	rule, ok := st.rules[tok.Type]
	if !ok {
		return errorMatch(src, sub)
	}

	m := Match{Kind: rule.Kind, Len: len(tok.Value), Next: sub}
	if k, ok := rule.Words[tok.Value]; ok {
		m.Kind = k
	}
	if rule.Next != Stay {
		m.Next = uint8(rule.Next)
	}
	return m
}

// errorMatch consumes one rune so the driver always makes progress.
func errorMatch(src string, sub uint8) Match {
	_, size := utf8.DecodeRuneInString(src)
	return Match{Kind: token.Error, Len: size, Next: sub}
}

func words(kind token.Kind, lists ...[]string) map[string]token.Kind {
	out := map[string]token.Kind{}
	for _, list := range lists {
		for _, w := range list {
			out[w] = kind
		}
	}
	return out
}
