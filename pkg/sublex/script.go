package sublex

import (
	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/token"
)

var (
	es5Keywords = []string{
		"break", "case", "catch", "continue", "debugger", "default", "delete", "do",
		"else", "finally", "for", "function", "if", "in", "instanceof", "new",
		"return", "switch", "this", "throw", "try", "typeof", "var", "void",
		"while", "with", "null", "true", "false",
	}
	es6Keywords    = []string{"class", "const", "export", "extends", "import", "super", "let", "yield", "static"}
	esNextKeywords = []string{"async", "await"}
	tsKeywords     = []string{
		"abstract", "as", "declare", "enum", "implements", "interface", "keyof",
		"namespace", "private", "protected", "public", "readonly", "satisfies", "type",
	}
	// v-for aliases: `item of items`.
	expressionKeywords = []string{"of"}
)

const (
	identPattern     = `[A-Za-z_$\p{L}][\w$\p{L}\p{N}]*`
	privateIdent     = `#[A-Za-z_$\p{L}][\w$\p{L}\p{N}]*`
	numberPattern    = `0[xX][0-9a-fA-F_]+n?|0[bB][01_]+n?|0[oO][0-7_]+n?|(?:\d[\d_]*\.?[\d_]*|\.\d[\d_]*)(?:[eE][+-]?\d+)?n?`
	es5NumberPattern = `0[xX][0-9a-fA-F]+|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`
	lineComment      = `//[^\n]*`
	blockComment     = `/\*(?s:.*?)\*/`
	openComment      = `/\*(?s:.*)`
	dqString         = `"(?:\\(?s:.)|[^"\\\n])*"?`
	sqString         = `'(?:\\(?s:.)|[^'\\\n])*'?`
	templateString   = "`(?:\\\\(?s:.)|[^\\\\`])*`?"
	whitespace       = `\s+`
	anyChar          = `(?s:.)`

	es5Operators    = `>>>=|===|!==|<<=|>>=|>>>|==|!=|<=|>=|&&|\|\||\+\+|--|\+=|-=|\*=|/=|%=|&=|\|=|\^=|<<|>>|[-+*/%&|^!~<>=?:]`
	es6Operators    = `\.\.\.|>>>=|===|!==|\*\*=|<<=|>>=|>>>|==|!=|<=|>=|&&|\|\||\+\+|--|\+=|-=|\*=|/=|%=|&=|\|=|\^=|\*\*|<<|>>|[-+*/%&|^!~<>=?:]`
	esNextOperators = `\.\.\.|>>>=|===|!==|\*\*=|<<=|>>=|>>>|\?\?=|&&=|\|\|=|==|!=|<=|>=|&&|\|\||\?\?|\?\.|\+\+|--|\+=|-=|\*=|/=|%=|&=|\|=|\^=|\*\*|<<|>>|[-+*/%&|^!~<>=?:]`

	punctuation   = `[{}()\[\];,.]`
	tsPunctuation = `[{}()\[\];,.@]`

	jsxOpen     = `</?[A-Za-z][\w.:-]*`
	jsxFragment = `</?>`
	jsxAttrName = `[A-Za-z_$][\w$:.-]*`
	jsxExpr     = `\{(?:[^{}]|\{[^{}]*\})*\}?`
	jsxString   = `"[^"]*"?|'[^']*'?`
	jsxTagClose = `/?>`
)

// jsx sub-states
const (
	jsxRoot = iota
	jsxTag
)

type scriptFlavor struct {
	level      dialect.Level
	typed      bool
	jsx        bool
	expression bool
}

func (f scriptFlavor) keywords() map[string]token.Kind {
	lists := [][]string{es5Keywords}
	if f.level >= dialect.ES6 || f.typed {
		lists = append(lists, es6Keywords)
	}
	if f.level >= dialect.ESNext || f.typed {
		lists = append(lists, esNextKeywords)
	}
	if f.typed {
		lists = append(lists, tsKeywords)
	}
	if f.expression {
		lists = append(lists, expressionKeywords)
	}
	return words(token.Keyword, lists...)
}

func (f scriptFlavor) root() []Rule {
	modern := f.level >= dialect.ES6 || f.typed

	rules := []Rule{
		R(token.Whitespace, whitespace),
		R(token.Comment, lineComment),
		R(token.Comment, blockComment),
		R(token.Comment, openComment),
		R(token.String, dqString),
		R(token.String, sqString),
	}
	if modern {
		rules = append(rules, R(token.TemplateString, templateString))
	}
	if modern {
		rules = append(rules, R(token.Number, numberPattern))
	} else {
		rules = append(rules, R(token.Number, es5NumberPattern))
	}

	ident := R(token.Identifier, identPattern)
	ident.Words = f.keywords()
	rules = append(rules, ident)
	if f.level >= dialect.ESNext || f.typed {
		rules = append(rules, R(token.Identifier, privateIdent))
	}

	if modern {
		rules = append(rules, R(token.Arrow, `=>`))
	}
	if f.jsx {
		rules = append(rules,
			R(token.JSXTagStart, jsxFragment),
			Rule{Kind: token.JSXTagStart, Pattern: jsxOpen, Next: jsxTag},
		)
	}

	switch {
	case f.level >= dialect.ESNext || f.typed:
		rules = append(rules, R(token.Operator, esNextOperators))
	case f.level == dialect.ES6:
		rules = append(rules, R(token.Operator, es6Operators))
	default:
		rules = append(rules, R(token.Operator, es5Operators))
	}

	if f.typed {
		rules = append(rules, R(token.Punctuation, tsPunctuation))
	} else {
		rules = append(rules, R(token.Punctuation, punctuation))
	}

	return append(rules, R(token.Error, anyChar))
}

func jsxTagRules() []Rule {
	return []Rule{
		R(token.Whitespace, whitespace),
		{Kind: token.JSXTagEnd, Pattern: jsxTagClose, Next: jsxRoot},
		R(token.JSXExpression, jsxExpr),
		R(token.String, jsxString),
		R(token.Identifier, jsxAttrName),
		R(token.Operator, `=`),
		R(token.Error, anyChar),
	}
}

func (f scriptFlavor) compile(name string) *Grammar {
	if f.jsx {
		return MustCompile(name, f.root(), jsxTagRules())
	}
	return MustCompile(name, f.root())
}
