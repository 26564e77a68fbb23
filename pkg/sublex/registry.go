package sublex

import (
	"github.com/walteh/vuelex/pkg/dialect"
)

var (
	scriptByLevel     [dialect.ESNext + 1]*Grammar
	jsxByLevel        [dialect.ESNext + 1]*Grammar
	expressionByLevel [dialect.ESNext + 1]*Grammar

	typescript = scriptFlavor{level: dialect.ESNext, typed: true}.compile("typescript")
	tsx        = scriptFlavor{level: dialect.ESNext, typed: true, jsx: true}.compile("tsx")

	css    = styleFlavor{}.compile("css")
	scss   = styleFlavor{lineComments: true, dollarVariables: true}.compile("scss")
	less   = styleFlavor{lineComments: true}.compile("less")
	stylus = styleFlavor{lineComments: true, dollarVariables: true}.compile("stylus")

	pug = MustCompile("pug", pugRules())
)

func init() {
	for level := dialect.ES5; level <= dialect.ESNext; level++ {
		scriptByLevel[level] = scriptFlavor{level: level}.compile("javascript-" + level.String())
		jsxByLevel[level] = scriptFlavor{level: level, jsx: true}.compile("jsx-" + level.String())
		expressionByLevel[level] = scriptFlavor{level: level, expression: true}.compile("expression-" + level.String())
	}
}

// For returns the grammar that lexes a region of dialect d. Markup dialects
// other than TemplatePug have no grammar and return nil: their content is
// lexed as markup.
func For(d dialect.Dialect, level dialect.Level) *Grammar {
	if level > dialect.ESNext {
		level = dialect.DefaultLevel
	}
	switch d {
	case dialect.Script:
		return scriptByLevel[level]
	case dialect.ScriptJSX:
		return jsxByLevel[level]
	case dialect.ScriptTS:
		return typescript
	case dialect.ScriptTSX:
		return tsx
	case dialect.Expression:
		return expressionByLevel[level]
	case dialect.Style, dialect.StylePostCSS:
		return css
	case dialect.StyleSCSS, dialect.StyleSass:
		return scss
	case dialect.StyleLess:
		return less
	case dialect.StyleStylus:
		return stylus
	case dialect.TemplatePug:
		return pug
	default:
		return nil
	}
}
