package vuelex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/vuelex/pkg/diff"
	"github.com/walteh/vuelex/pkg/dump"
	"github.com/walteh/vuelex/pkg/vuelex"
)

// corpusCase is a document with its expected token dump. everyToken says
// whether restarting is checked at every token or only where the lexer is
// back in its initial state.
type corpusCase struct {
	name       string
	input      string
	everyToken bool
	// expected is the full dump; when empty only contains is checked.
	expected string
	contains []string
	// skipDump names why the dump is not compared. Coverage and restarts
	// are still checked.
	skipDump string
}

var corpus = []corpusCase{
	{
		name:       "script_empty",
		input:      "<script>\n</script>",
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('script')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('script')
TAG_END ('>')
`,
	},
	{
		name:  "script_ts",
		input: "<script lang=\"typescript\">\n(() => {})();\n</script>",
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('script')
WHITESPACE (' ')
ATTR_NAME ('lang')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_VALUE ('typescript')
ATTR_QUOTE ('"')
TAG_END ('>')
WHITESPACE ('\n')
PUNCTUATION ('(')
PUNCTUATION ('(')
PUNCTUATION (')')
WHITESPACE (' ')
ARROW ('=>')
WHITESPACE (' ')
PUNCTUATION ('{')
PUNCTUATION ('}')
PUNCTUATION (')')
PUNCTUATION ('(')
PUNCTUATION (')')
PUNCTUATION (';')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('script')
TAG_END ('>')
`,
	},
	{
		name:       "style_empty",
		input:      "<style>\n</style>",
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('style')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('style')
TAG_END ('>')
`,
	},
	{
		name: "style_sass",
		input: lines(
			`<style lang="sass">`,
			`$font-stack:    Helvetica, sans-serif`,
			`$primary-color: #333`,
			``,
			`body`,
			`  font: 100% $font-stack`,
			`  color: $primary-color`,
			`</style>`,
		),
		contains: []string{
			"ATTR_VALUE ('sass')",
			"VARIABLE ('$font-stack')",
			"IDENTIFIER ('Helvetica')",
			"HASH ('#333')",
			"NUMBER ('100%')",
			"VARIABLE ('$primary-color')",
		},
	},
	{
		name: "style_sass_after_template",
		input: lines(
			`<template>`,
			`</template>`,
			``,
			`<style lang="sass">`,
			`$font-stack:    Helvetica, sans-serif`,
			`$primary-color: #333`,
			``,
			`body`,
			`  font: 100% $font-stack`,
			`  color: $primary-color`,
			`</style>`,
		),
		contains: []string{
			"TAG_NAME ('template')",
			"VARIABLE ('$font-stack')",
			"HASH ('#333')",
		},
	},
	{
		name:       "template_empty",
		input:      "<template>\n</template>",
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "template_inner",
		input: lines(
			`<template>`,
			`  <template></template>`,
			`</template>`,
			`<script>`,
			`</script>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n')
TAG_OPEN_START ('<')
TAG_NAME ('script')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('script')
TAG_END ('>')
`,
	},
	{
		name: "template_inner_double",
		input: lines(
			`<template>`,
			`  <template></template>`,
			`  <template></template>`,
			`</template>`,
			`<script>`,
			`</script>`,
		),
		everyToken: true,
		contains:   []string{"TAG_NAME ('template')", "TAG_NAME ('script')"},
	},
	{
		name: "template_jade",
		input: lines(
			`<template lang="jade">`,
			`#content`,
			`  .block`,
			`    input#bar.foo1.foo2`,
			`</template>`,
		),
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
WHITESPACE (' ')
ATTR_NAME ('lang')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_VALUE ('jade')
ATTR_QUOTE ('"')
TAG_END ('>')
WHITESPACE ('\n')
HASH ('#content')
WHITESPACE ('\n  ')
CLASS_NAME ('.block')
WHITESPACE ('\n    ')
IDENTIFIER ('input')
HASH ('#bar')
CLASS_NAME ('.foo1')
CLASS_NAME ('.foo2')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "template_new_line",
		input: lines(
			`<template>`,
			`    <q-drawer-link>`,
			`        text`,
			`    </q-drawer-link>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n    ')
TAG_OPEN_START ('<')
TAG_NAME ('q-drawer-link')
TAG_END ('>')
WHITESPACE ('\n        ')
TEXT ('text')
WHITESPACE ('\n    ')
TAG_CLOSE_START ('</')
TAG_NAME ('q-drawer-link')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "binding_attribute",
		input: lines(
			`<template>`,
			`  <div :bound="{foo: bar}" v-bind:bound="{bar: foo}"></div>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
BINDING_ATTR_NAME (':bound')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
PUNCTUATION ('{')
IDENTIFIER ('foo')
OPERATOR (':')
WHITESPACE (' ')
IDENTIFIER ('bar')
PUNCTUATION ('}')
ATTR_QUOTE ('"')
WHITESPACE (' ')
BINDING_ATTR_NAME ('v-bind:bound')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
PUNCTUATION ('{')
IDENTIFIER ('bar')
OPERATOR (':')
WHITESPACE (' ')
IDENTIFIER ('foo')
PUNCTUATION ('}')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "event_attribute",
		input: lines(
			`<template>`,
			`  <div @event="{foo: bar}" v-on:event="{bar: foo}"></div>`,
			`</template>`,
		),
		everyToken: true,
		contains: []string{
			"EVENT_ATTR_NAME ('@event')",
			"EVENT_ATTR_NAME ('v-on:event')",
			"OPERATOR (':')",
		},
	},
	{
		name: "html_lang_template",
		input: lines(
			`<template lang="html">`,
			`  <toggle :item="item"/>`,
			`</template>`,
		),
		contains: []string{
			"ATTR_VALUE ('html')",
			"TAG_NAME ('toggle')",
			"BINDING_ATTR_NAME (':item')",
			"IDENTIFIER ('item')",
			"TAG_SELF_CLOSE_END ('/>')",
		},
	},
	{
		name: "v_for",
		input: lines(
			`<template>`,
			`  <ul id="example-1">`,
			`    <li v-for="item in items"/>`,
			`    <li v-for="(item, key) in items"/>`,
			`  </ul>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('ul')
WHITESPACE (' ')
ATTR_NAME ('id')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_VALUE ('example-1')
ATTR_QUOTE ('"')
TAG_END ('>')
WHITESPACE ('\n    ')
TAG_OPEN_START ('<')
TAG_NAME ('li')
WHITESPACE (' ')
DIRECTIVE_ATTR_NAME ('v-for')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('item')
WHITESPACE (' ')
KEYWORD ('in')
WHITESPACE (' ')
IDENTIFIER ('items')
ATTR_QUOTE ('"')
TAG_SELF_CLOSE_END ('/>')
WHITESPACE ('\n    ')
TAG_OPEN_START ('<')
TAG_NAME ('li')
WHITESPACE (' ')
DIRECTIVE_ATTR_NAME ('v-for')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
PUNCTUATION ('(')
IDENTIFIER ('item')
PUNCTUATION (',')
WHITESPACE (' ')
IDENTIFIER ('key')
PUNCTUATION (')')
WHITESPACE (' ')
KEYWORD ('in')
WHITESPACE (' ')
IDENTIFIER ('items')
ATTR_QUOTE ('"')
TAG_SELF_CLOSE_END ('/>')
WHITESPACE ('\n  ')
TAG_CLOSE_START ('</')
TAG_NAME ('ul')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "lang_tag",
		input: lines(
			`<template>`,
			`  <lang >inside </lang>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('lang')
WHITESPACE (' ')
TAG_END ('>')
TEXT ('inside')
WHITESPACE (' ')
TAG_CLOSE_START ('</')
TAG_NAME ('lang')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "attribute_values_embedded",
		input: lines(
			`<template>`,
			`  <div v-else class="one two three four" @click="someFun()">5</div>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
DIRECTIVE_ATTR_NAME ('v-else')
WHITESPACE (' ')
ATTR_NAME ('class')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_VALUE ('one two three four')
ATTR_QUOTE ('"')
WHITESPACE (' ')
EVENT_ATTR_NAME ('@click')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('someFun')
PUNCTUATION ('(')
PUNCTUATION (')')
ATTR_QUOTE ('"')
TAG_END ('>')
TEXT ('5')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "tsx_lang",
		input: lines(
			`<script lang="tsx">`,
			`  let a = 1;`,
			`  export default {`,
			`    name: "with-tsx",`,
			`    render() {`,
			`      return <div></div>`,
			`    }`,
			`  }`,
			`</script>`,
		),
		contains: []string{
			"KEYWORD ('let')",
			"KEYWORD ('export')",
			"KEYWORD ('default')",
			`STRING ('"with-tsx"')`,
			"KEYWORD ('return')",
			"JSX_TAG_START ('<div')",
			"JSX_TAG_END ('>')",
			"JSX_TAG_START ('</div')",
			"TAG_CLOSE_START ('</')",
		},
	},
	{
		name: "script_es6",
		input: lines(
			`<script lang="typescript">`,
			` (() => {})();`,
			`</script>`,
		),
		contains: []string{"ARROW ('=>')"},
	},
	{
		name: "template_html",
		input: lines(
			`<template>`,
			`  <h2>{{title}}</h2>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n  ')
TAG_OPEN_START ('<')
TAG_NAME ('h2')
TAG_END ('>')
INTERPOLATION_START ('{{')
IDENTIFIER ('title')
INTERPOLATION_END ('}}')
TAG_CLOSE_START ('</')
TAG_NAME ('h2')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "bound_attributes",
		input: lines(
			`<template>`,
			` <a :src=bla() @click='event()'></a>`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_OPEN_START ('<')
TAG_NAME ('a')
WHITESPACE (' ')
BINDING_ATTR_NAME (':src')
ATTR_EQ ('=')
IDENTIFIER ('bla')
PUNCTUATION ('(')
PUNCTUATION (')')
WHITESPACE (' ')
EVENT_ATTR_NAME ('@click')
ATTR_EQ ('=')
ATTR_QUOTE (''')
IDENTIFIER ('event')
PUNCTUATION ('(')
PUNCTUATION (')')
ATTR_QUOTE (''')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('a')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "complex",
		input: lines(
			`<template>`,
			`  <div v-for="let contact of value; index as i"`,
			`    @click="contact"`,
			`  </div>`,
			`  `,
			`  <li v-for="let user of userObservable | async as users; index as i; first as isFirst">`,
			`    {{i}}/{{users.length}}. {{user}} <span v-if="isFirst">default</span>`,
			`  </li>`,
			`  `,
			`  <tr :style="{'visible': con}" v-for="let contact of contacts; index as i">`,
			`    <td>{{i + 1}}</td>`,
			`  </tr>`,
			`</template>`,
		),
		contains: []string{
			"KEYWORD ('let')",
			"KEYWORD ('of')",
			"EVENT_ATTR_NAME ('@click')",
			"TAG_NAME ('div')",
			"OPERATOR ('|')",
			"INTERPOLATION_START ('{{')",
			"TEXT ('/')",
			"TEXT ('.')",
			"DIRECTIVE_ATTR_NAME ('v-if')",
			"TEXT ('default')",
			"BINDING_ATTR_NAME (':style')",
			`STRING (''visible'')`,
			"NUMBER ('1')",
		},
	},
	{
		name: "escapes",
		input: lines(
			`<template>`,
			` <div :input="'test&quot;test\u1234\u123\n\r\t'">`,
			` <div :input='"ttt" + &apos;str\u1234ing&apos;'>`,
			`</template>`,
		),
		everyToken: true,
		skipDump:   "character references inside expressions are not decoded before lexing",
	},
	{
		name: "text_in_escaped_quotes",
		input: lines(
			`<template>`,
			` <div [foo]="&quot;test&quot; + 12">`,
			`</template>`,
		),
		everyToken: true,
		skipDump:   "character references inside expressions are not decoded before lexing",
	},
	{
		name: "text_in_escaped_apos",
		input: lines(
			`<template>`,
			` <div [foo]="&apos;test&apos; + 12">`,
			`</template>`,
		),
		everyToken: true,
		skipDump:   "character references inside expressions are not decoded before lexing",
	},
	{
		name: "script_src",
		input: lines(
			`<template>`,
			` <script src="">var i</script>`,
			` foo`,
			`</template>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_OPEN_START ('<')
TAG_NAME ('script')
WHITESPACE (' ')
ATTR_NAME ('src')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_QUOTE ('"')
TAG_END ('>')
KEYWORD ('var')
WHITESPACE (' ')
IDENTIFIER ('i')
TAG_CLOSE_START ('</')
TAG_NAME ('script')
TAG_END ('>')
WHITESPACE ('\n ')
TEXT ('foo')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "script",
		input: lines(
			`<template>`,
			` <script>var i</script>`,
			` foo`,
			`</template>`,
		),
		everyToken: true,
		contains:   []string{"KEYWORD ('var')", "IDENTIFIER ('i')", "TEXT ('foo')"},
	},
	{
		name: "script_vue_event",
		input: lines(
			`<template>`,
			` <script @foo="">var i</script>`,
			` foo`,
			`</template>`,
		),
		everyToken: true,
		contains:   []string{"EVENT_ATTR_NAME ('@foo')", "KEYWORD ('var')", "TEXT ('foo')"},
	},
	{
		name: "script_with_event_and_angular_attr",
		input: lines(
			`<template>`,
			` <script src="//example.com" onerror="console.log(1)" @error='console.log(1)'onload="console.log(1)" @load='console.log(1)'>`,
			`   console.log(2)`,
			` </script>`,
			` <div></div>`,
			`</template>`,
		),
		contains: []string{
			"ATTR_VALUE ('//example.com')",
			"ATTR_NAME ('onerror')",
			"EVENT_ATTR_NAME ('@error')",
			"ATTR_NAME ('onload')",
			"EVENT_ATTR_NAME ('@load')",
			"IDENTIFIER ('console')",
			"NUMBER ('2')",
			"TAG_NAME ('div')",
		},
	},
	{
		name: "style_tag",
		input: lines(
			`<template>`,
			` <style>`,
			`   div {`,
			`   }`,
			` </style>`,
			` <div></div>`,
			`</template>`,
		),
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_OPEN_START ('<')
TAG_NAME ('style')
TAG_END ('>')
WHITESPACE ('\n   ')
IDENTIFIER ('div')
WHITESPACE (' ')
PUNCTUATION ('{')
WHITESPACE ('\n   ')
PUNCTUATION ('}')
WHITESPACE ('\n ')
TAG_CLOSE_START ('</')
TAG_NAME ('style')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_OPEN_START ('<')
TAG_NAME ('div')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "style_vue_event",
		input: lines(
			`<template>`,
			` <style @load='disabled=true'>`,
			`    div {`,
			`    }`,
			` </style>`,
			` <div></div>`,
			`</template>`,
		),
		contains: []string{"EVENT_ATTR_NAME ('@load')", "IDENTIFIER ('disabled')", "OPERATOR ('=')", "KEYWORD ('true')", "IDENTIFIER ('div')"},
	},
	{
		name: "style_with_event_and_binding",
		input: lines(
			`<template>`,
			` <style @load='disabled=true' onload="this.disabled=true" @load='disabled=true'>`,
			`   div {`,
			`   }`,
			` </style>`,
			` <div></div>`,
			`</template>`,
		),
		contains: []string{"ATTR_NAME ('onload')", "KEYWORD ('this')", "PUNCTUATION ('.')"},
	},
	{
		name: "style_after_binding",
		input: lines(
			`<template>`,
			` <div :foo style="width: 13px">`,
			`   <span @click="foo"></span>`,
			` </div>`,
			`</template>`,
		),
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('template')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
BINDING_ATTR_NAME (':foo')
WHITESPACE (' ')
ATTR_NAME ('style')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('width')
PUNCTUATION (':')
WHITESPACE (' ')
NUMBER ('13px')
ATTR_QUOTE ('"')
TAG_END ('>')
WHITESPACE ('\n   ')
TAG_OPEN_START ('<')
TAG_NAME ('span')
WHITESPACE (' ')
EVENT_ATTR_NAME ('@click')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('foo')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('span')
TAG_END ('>')
WHITESPACE ('\n ')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_CLOSE_START ('</')
TAG_NAME ('template')
TAG_END ('>')
`,
	},
	{
		name: "style_after_style",
		input: lines(
			`<template>`,
			` <div style style v-foo='bar'>`,
			`   <span style='width: 13px' @click="foo"></span>`,
			` </div>`,
			`</template>`,
		),
		contains: []string{"DIRECTIVE_ATTR_NAME ('v-foo')", "IDENTIFIER ('bar')", "NUMBER ('13px')", "EVENT_ATTR_NAME ('@click')"},
	},
	{
		name: "binding_after_style",
		input: lines(
			`<template>`,
			` <div style :foo='bar'>`,
			`  <span style='width: 13px' @click="foo"></span>`,
			` </div>`,
			`</template>`,
		),
		contains: []string{"BINDING_ATTR_NAME (':foo')", "IDENTIFIER ('bar')", "NUMBER ('13px')"},
	},
	{
		name: "empty_directive",
		input: lines(
			`<div v-foo :bar=""></div>`,
			`<div :foo="some"></div>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
DIRECTIVE_ATTR_NAME ('v-foo')
WHITESPACE (' ')
BINDING_ATTR_NAME (':bar')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
BINDING_ATTR_NAME (':foo')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('some')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
`,
	},
	{
		name: "empty_html_event",
		input: lines(
			`<div onclick onclick=""></div>`,
			`<div :bar="some"></div>`,
		),
		everyToken: true,
		expected: `
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
ATTR_NAME ('onclick')
WHITESPACE (' ')
ATTR_NAME ('onclick')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
WHITESPACE ('\n')
TAG_OPEN_START ('<')
TAG_NAME ('div')
WHITESPACE (' ')
BINDING_ATTR_NAME (':bar')
ATTR_EQ ('=')
ATTR_QUOTE ('"')
IDENTIFIER ('some')
ATTR_QUOTE ('"')
TAG_END ('>')
TAG_CLOSE_START ('</')
TAG_NAME ('div')
TAG_END ('>')
`,
	},
}

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func TestCorpus(t *testing.T) {
	for _, tt := range corpus {
		t.Run(tt.name, func(t *testing.T) {
			src := []byte(tt.input)
			tokens, err := vuelex.Lex(src)
			require.NoError(t, err)
			requireCoverage(t, src, tokens)

			got := dump.Text(src, tokens)
			switch {
			case tt.skipDump != "":
				t.Logf("not comparing tokens: %s", tt.skipDump)
			case tt.expected != "":
				want := strings.TrimPrefix(tt.expected, "\n")
				if d := diff.Lines(want, got); d != "" {
					t.Errorf("unexpected tokens: %s", d)
				}
			}
			for _, line := range tt.contains {
				assert.Contains(t, strings.Split(got, "\n"), line)
			}

			assert.NoError(t, vuelex.VerifyRestart(src, tt.everyToken))
		})
	}
}

// Restarting is exact at every token, including the documents above that
// only require restarts from the initial state.
func TestCorpusRestartAtEveryToken(t *testing.T) {
	for _, tt := range corpus {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, vuelex.VerifyRestart([]byte(tt.input), true))
		})
	}
}
