// Package config loads vuelex settings from an HCL or YAML file.
package config

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/vuelex/pkg/dialect"
	"github.com/walteh/vuelex/pkg/dump"
	"github.com/walteh/vuelex/pkg/vuelex"
)

// Config is the file format. Every field is optional.
type Config struct {
	// Level is the scripting level of the default script dialect.
	Level string `json:"level,omitempty" hcl:"level,optional" yaml:"level,omitempty"`
	// Format is the output format of `vuelex tokens`.
	Format string `json:"format,omitempty" hcl:"format,optional" yaml:"format,omitempty"`
	// Positions adds line and column ranges to the output.
	Positions bool `json:"positions,omitempty" hcl:"positions,optional" yaml:"positions,omitempty"`
	// Include lists the globs used when no files are given.
	Include []string `json:"include,omitempty" hcl:"include,optional" yaml:"include,omitempty"`
	// Aliases map extra lang attribute values to dialects.
	Aliases []*Alias `json:"aliases,omitempty" hcl:"alias,block" yaml:"aliases,omitempty"`
}

// Alias is a single `alias "<lang>" { dialect = "<name>" }` block.
type Alias struct {
	Lang    string `json:"lang" hcl:"lang,label" yaml:"lang"`
	Dialect string `json:"dialect" hcl:"dialect,attr" yaml:"dialect"`
}

// DefaultInclude is used when neither files nor Include are given.
var DefaultInclude = []string{"**/*.vue"}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Level:   dialect.DefaultLevel.String(),
		Format:  string(dump.FormatText),
		Include: DefaultInclude,
	}
}

// evalContext exposes every dialect name as `dialect.<name>`, with dashes
// replaced by underscores, so HCL files can refer to them without quoting.
func evalContext() *hcl.EvalContext {
	names := map[string]cty.Value{}
	for _, d := range dialect.All() {
		names[strings.ReplaceAll(d.String(), "-", "_")] = cty.StringVal(d.String())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"dialect": cty.ObjectVal(names),
		},
	}
}

// LoadConfig reads path from fs. Files ending in .yaml or .yml are YAML,
// anything else is HCL. Unset fields keep their Default values.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
	default:
		parser := hclparse.NewParser()
		hclFile, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &cfg)
		if diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL: %s", diags.Error())
		}
	}

	out := Default().Merge(&cfg)
	if err := out.Validate(); err != nil {
		return nil, errors.Errorf("validating %s: %w", path, err)
	}
	return out, nil
}

// Merge returns c with every set field of other applied on top.
func (c *Config) Merge(other *Config) *Config {
	out := *c
	if other == nil {
		return &out
	}
	if other.Level != "" {
		out.Level = other.Level
	}
	if other.Format != "" {
		out.Format = other.Format
	}
	if other.Positions {
		out.Positions = true
	}
	if len(other.Include) > 0 {
		out.Include = other.Include
	}
	if len(other.Aliases) > 0 {
		out.Aliases = append(append([]*Alias{}, c.Aliases...), other.Aliases...)
	}
	return &out
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := dialect.ParseLevel(c.Level); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := dump.ParseFormat(c.Format); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.Selector(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// LanguageLevel parses Level.
func (c *Config) LanguageLevel() (dialect.Level, error) {
	return dialect.ParseLevel(c.Level)
}

// OutputFormat parses Format.
func (c *Config) OutputFormat() (dump.Format, error) {
	return dump.ParseFormat(c.Format)
}

// Selector returns the default selector extended with the configured aliases.
func (c *Config) Selector() (*dialect.Selector, error) {
	if len(c.Aliases) == 0 {
		return dialect.DefaultSelector, nil
	}
	aliases := make(map[string]dialect.Dialect, len(c.Aliases))
	for _, a := range c.Aliases {
		if a == nil {
			continue
		}
		d, err := dialect.ParseDialect(a.Dialect)
		if err != nil {
			return nil, errors.Errorf("alias %q: %w", a.Lang, err)
		}
		aliases[a.Lang] = d
	}
	return dialect.DefaultSelector.WithAliases(aliases)
}

// DefaultPaths are tried in order by Discover.
var DefaultPaths = []string{".vuelex.hcl", ".vuelex.yaml", ".vuelex.yml"}

// Discover loads the first of DefaultPaths found in dir, or returns Default
// when there is none.
func Discover(fs afero.Fs, dir string) (*Config, error) {
	for _, name := range DefaultPaths {
		p := filepath.Join(dir, name)
		ok, err := afero.Exists(fs, p)
		if err != nil {
			return nil, errors.Errorf("checking %s: %w", p, err)
		}
		if ok {
			return LoadConfig(fs, p)
		}
	}
	return Default(), nil
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying c.
func (c *Config) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// Ctx returns the Config stored in ctx, or Default when there is none.
func Ctx(ctx context.Context) *Config {
	if c, ok := ctx.Value(contextKey{}).(*Config); ok && c != nil {
		return c
	}
	return Default()
}

// LexOptions turns c into lexer options. The lexer logs to the logger in ctx.
func (c *Config) LexOptions(ctx context.Context) ([]vuelex.Option, error) {
	level, err := c.LanguageLevel()
	if err != nil {
		return nil, err
	}
	sel, err := c.Selector()
	if err != nil {
		return nil, err
	}
	return []vuelex.Option{
		vuelex.WithLevel(level),
		vuelex.WithSelector(sel),
		vuelex.WithLogger(*zerolog.Ctx(ctx)),
	}, nil
}
