package sublex

import (
	"github.com/walteh/vuelex/pkg/token"
)

const (
	cssIdent       = `-?-?[A-Za-z_\p{L}][\w\p{L}-]*`
	cssNumber      = `[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?(?:%|[A-Za-z]+)?`
	cssURL         = `(?i:url)\((?:[^()"'\\]|\\.)*\)`
	cssAtKeyword   = `@[\w-]+`
	cssImportant   = `!\s*(?i:important)`
	cssHash        = `#[\w-]+`
	cssClass       = `\.-?[A-Za-z_\p{L}][\w\p{L}-]*`
	cssPunctuation = `[{}()\[\];:,]`
	cssOperator    = `[>+~*=|^$/&%<!]`
	scssVariable   = `\$[\w-]+`
	scssInterp     = `#\{[^}]*\}?`
	scssPlacehold  = `%[A-Za-z_-][\w-]*`
)

type styleFlavor struct {
	// lineComments enables `//` comments (scss, sass, less, stylus).
	lineComments bool
	// dollarVariables enables `$name` variables and `#{}` interpolation.
	dollarVariables bool
}

func (f styleFlavor) rules() []Rule {
	rules := []Rule{
		R(token.Whitespace, whitespace),
		R(token.Comment, blockComment),
		R(token.Comment, openComment),
	}
	if f.lineComments {
		rules = append(rules, R(token.Comment, lineComment))
	}
	rules = append(rules,
		R(token.String, dqString),
		R(token.String, sqString),
		R(token.URL, cssURL),
		R(token.AtKeyword, cssAtKeyword),
		R(token.Important, cssImportant),
	)
	if f.dollarVariables {
		rules = append(rules,
			R(token.Variable, scssVariable),
			R(token.Variable, scssInterp),
			R(token.ClassName, scssPlacehold),
		)
	}
	return append(rules,
		R(token.Hash, cssHash),
		R(token.ClassName, cssClass),
		R(token.Identifier, cssIdent),
		R(token.Number, cssNumber),
		R(token.Punctuation, cssPunctuation),
		R(token.Operator, cssOperator),
		R(token.Error, anyChar),
	)
}

func (f styleFlavor) compile(name string) *Grammar {
	return MustCompile(name, f.rules())
}
