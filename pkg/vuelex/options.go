package vuelex

import (
	"github.com/rs/zerolog"

	"github.com/walteh/vuelex/pkg/dialect"
)

type options struct {
	level    dialect.Level
	selector *dialect.Selector
	logger   zerolog.Logger
}

func defaultOptions() options {
	return options{
		level:    dialect.DefaultLevel,
		selector: dialect.DefaultSelector,
		logger:   zerolog.Nop(),
	}
}

// Option configures a Lexer.
type Option func(*options)

// WithLevel sets the base scripting level of the default script dialect and
// of expressions.
func WithLevel(level dialect.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithSelector replaces the table used to resolve lang attributes.
func WithSelector(s *dialect.Selector) Option {
	return func(o *options) {
		if s != nil {
			o.selector = s
		}
	}
}

// WithLogger sets the logger mode transitions are traced to.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
