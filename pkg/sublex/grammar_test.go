package sublex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/sublex"
	"github.com/walteh/vuelex/pkg/token"
)

// lexAll drives g over src and renders `KIND(text)` per token, skipping whitespace.
func lexAll(t *testing.T, g *sublex.Grammar, src string) []string {
	t.Helper()
	require.NotNil(t, g)

	var out []string
	var sub uint8
	for pos := 0; pos < len(src); {
		m := g.Next(src[pos:], sub)
		require.Positive(t, m.Len, "no progress at %d", pos)
		if m.Kind != token.Whitespace {
			out = append(out, fmt.Sprintf("%s(%s)", m.Kind, src[pos:pos+m.Len]))
		}
		pos += m.Len
		sub = m.Next
	}
	return out
}

func TestScriptGrammars(t *testing.T) {
	tests := []struct {
		name     string
		dialect  dialect.Dialect
		level    dialect.Level
		input    string
		expected []string
	}{
		{
			name:    "typescript_arrow",
			dialect: dialect.ScriptTS,
			input:   "(() => {})();",
			expected: []string{
				"PUNCTUATION(()", "PUNCTUATION(()", "PUNCTUATION())", "ARROW(=>)", "PUNCTUATION({)",
				"PUNCTUATION(})", "PUNCTUATION())", "PUNCTUATION(()", "PUNCTUATION())", "PUNCTUATION(;)",
			},
		},
		{
			name:     "es5_has_no_arrow",
			dialect:  dialect.Script,
			level:    dialect.ES5,
			input:    "a => b",
			expected: []string{"IDENTIFIER(a)", "OPERATOR(=)", "OPERATOR(>)", "IDENTIFIER(b)"},
		},
		{
			name:     "es5_let_is_identifier",
			dialect:  dialect.Script,
			level:    dialect.ES5,
			input:    "let x",
			expected: []string{"IDENTIFIER(let)", "IDENTIFIER(x)"},
		},
		{
			name:     "es6_let_is_keyword",
			dialect:  dialect.Script,
			level:    dialect.ES6,
			input:    "let x = `a${b}`",
			expected: []string{"KEYWORD(let)", "IDENTIFIER(x)", "OPERATOR(=)", "TEMPLATE_STRING(`a${b}`)"},
		},
		{
			name:     "es5_backtick_is_error",
			dialect:  dialect.Script,
			level:    dialect.ES5,
			input:    "`",
			expected: []string{"ERROR(`)"},
		},
		{
			name:     "esnext_optional_chaining",
			dialect:  dialect.Script,
			level:    dialect.ESNext,
			input:    "a?.b ?? await c",
			expected: []string{"IDENTIFIER(a)", "OPERATOR(?.)", "IDENTIFIER(b)", "OPERATOR(??)", "KEYWORD(await)", "IDENTIFIER(c)"},
		},
		{
			name:     "keyword_prefix_is_identifier",
			dialect:  dialect.Script,
			level:    dialect.ES6,
			input:    "do$ done",
			expected: []string{"IDENTIFIER(do$)", "IDENTIFIER(done)"},
		},
		{
			name:     "typescript_keywords",
			dialect:  dialect.ScriptTS,
			input:    "interface A { readonly b: string }",
			expected: []string{"KEYWORD(interface)", "IDENTIFIER(A)", "PUNCTUATION({)", "KEYWORD(readonly)", "IDENTIFIER(b)", "OPERATOR(:)", "IDENTIFIER(string)", "PUNCTUATION(})"},
		},
		{
			name:    "tsx_tag_expression",
			dialect: dialect.ScriptTSX,
			input:   `return <div class="a">{x}</div>`,
			expected: []string{
				"KEYWORD(return)", "JSX_TAG_START(<div)", "IDENTIFIER(class)", "OPERATOR(=)", `STRING("a")`,
				"JSX_TAG_END(>)", "PUNCTUATION({)", "IDENTIFIER(x)", "PUNCTUATION(})", "JSX_TAG_START(</div)", "JSX_TAG_END(>)",
			},
		},
		{
			name:     "typescript_has_no_tag_expression",
			dialect:  dialect.ScriptTS,
			input:    "<div>",
			expected: []string{"OPERATOR(<)", "IDENTIFIER(div)", "OPERATOR(>)"},
		},
		{
			name:     "jsx_fragment_and_attr_expression",
			dialect:  dialect.ScriptJSX,
			level:    dialect.ES6,
			input:    "<><a b={c}/></>",
			expected: []string{"JSX_TAG_START(<>)", "JSX_TAG_START(<a)", "IDENTIFIER(b)", "OPERATOR(=)", "JSX_EXPRESSION({c})", "JSX_TAG_END(/>)", "JSX_TAG_START(</>)"},
		},
		{
			name:     "unterminated_block_comment",
			dialect:  dialect.Script,
			level:    dialect.ES6,
			input:    "a /* b\nc",
			expected: []string{"IDENTIFIER(a)", "COMMENT(/* b\nc)"},
		},
		{
			name:     "unterminated_string_stops_at_newline",
			dialect:  dialect.Script,
			level:    dialect.ES6,
			input:    "'abc\nd",
			expected: []string{"STRING('abc)", "IDENTIFIER(d)"},
		},
		{
			name:     "expression_v_for_alias",
			dialect:  dialect.Expression,
			level:    dialect.ES6,
			input:    "(item, key) of items",
			expected: []string{"PUNCTUATION(()", "IDENTIFIER(item)", "PUNCTUATION(,)", "IDENTIFIER(key)", "PUNCTUATION())", "KEYWORD(of)", "IDENTIFIER(items)"},
		},
		{
			name:     "numbers",
			dialect:  dialect.Script,
			level:    dialect.ESNext,
			input:    "0x1F 1_000n .5e3",
			expected: []string{"NUMBER(0x1F)", "NUMBER(1_000n)", "NUMBER(.5e3)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(t, sublex.For(tt.dialect, tt.level), tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStyleGrammars(t *testing.T) {
	tests := []struct {
		name     string
		dialect  dialect.Dialect
		input    string
		expected []string
	}{
		{
			name:     "css_rule",
			dialect:  dialect.Style,
			input:    "div.a > #b { width: 13px !important; }",
			expected: []string{"IDENTIFIER(div)", "CLASS_NAME(.a)", "OPERATOR(>)", "HASH(#b)", "PUNCTUATION({)", "IDENTIFIER(width)", "PUNCTUATION(:)", "NUMBER(13px)", "IMPORTANT(!important)", "PUNCTUATION(;)", "PUNCTUATION(})"},
		},
		{
			name:     "css_has_no_line_comment",
			dialect:  dialect.Style,
			input:    "// x",
			expected: []string{"OPERATOR(/)", "OPERATOR(/)", "IDENTIFIER(x)"},
		},
		{
			name:     "sass_variables",
			dialect:  dialect.StyleSass,
			input:    "$font-stack:    Helvetica, sans-serif\nbody\n  font: 100% $font-stack",
			expected: []string{"VARIABLE($font-stack)", "PUNCTUATION(:)", "IDENTIFIER(Helvetica)", "PUNCTUATION(,)", "IDENTIFIER(sans-serif)", "IDENTIFIER(body)", "IDENTIFIER(font)", "PUNCTUATION(:)", "NUMBER(100%)", "VARIABLE($font-stack)"},
		},
		{
			name:     "scss_line_comment_and_interpolation",
			dialect:  dialect.StyleSCSS,
			input:    "// c\n.a-#{$b} { @include m; }",
			expected: []string{"COMMENT(// c)", "CLASS_NAME(.a-)", "VARIABLE(#{$b})", "PUNCTUATION({)", "AT_KEYWORD(@include)", "IDENTIFIER(m)", "PUNCTUATION(;)", "PUNCTUATION(})"},
		},
		{
			name:     "css_url_and_custom_property",
			dialect:  dialect.StylePostCSS,
			input:    "--main: url(a.png)",
			expected: []string{"IDENTIFIER(--main)", "PUNCTUATION(:)", "URL(url(a.png))"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(t, sublex.For(tt.dialect, dialect.DefaultLevel), tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPugGrammar(t *testing.T) {
	got := lexAll(t, sublex.For(dialect.TemplatePug, dialect.DefaultLevel), "#content\n  .block\n    input#bar.foo1.foo2")
	assert.Equal(t, []string{"HASH(#content)", "CLASS_NAME(.block)", "IDENTIFIER(input)", "HASH(#bar)", "CLASS_NAME(.foo1)", "CLASS_NAME(.foo2)"}, got)
}

func TestMarkupDialectsHaveNoGrammar(t *testing.T) {
	assert.Nil(t, sublex.For(dialect.Template, dialect.DefaultLevel))
	assert.Nil(t, sublex.For(dialect.TemplateHTML, dialect.DefaultLevel))
	assert.Nil(t, sublex.For(dialect.None, dialect.DefaultLevel))
}

func TestNextOnEmptyInput(t *testing.T) {
	m := sublex.For(dialect.Script, dialect.ES6).Next("", 0)
	assert.Equal(t, 0, m.Len)
}

func TestNextClampsUnknownSubState(t *testing.T) {
	g := sublex.For(dialect.Script, dialect.ES6)
	assert.Equal(t, 1, g.States())

	m := g.Next("x", 7)
	assert.Equal(t, token.Identifier, m.Kind)
	assert.Equal(t, uint8(0), m.Next)
}
