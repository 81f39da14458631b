package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/helena-lang/helena/ast"
)

// Config holds tool-level settings for AST generation.
type Config struct {
	MaxLeafing MaxLeafing `yaml:"max_leafing"`
}

// MaxLeafing caps how many times each rule may produce a standalone
// top-level node. Nil fields fall back to the engine default; an explicit
// zero forbids the rule at the top level entirely.
type MaxLeafing struct {
	Function *int `yaml:"function"`
	Newline  *int `yaml:"newline"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{}
}

// Load reads configuration from path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects caps that no generator run could honor.
func (c *Config) Validate() error {
	for name, limit := range map[string]*int{
		"max_leafing.function": c.MaxLeafing.Function,
		"max_leafing.newline":  c.MaxLeafing.Newline,
	} {
		if limit != nil && *limit < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, *limit)
		}
	}
	return nil
}

// Generator converts the file-level settings into the engine's generation
// config.
func (c *Config) Generator() ast.Config {
	out := ast.DefaultConfig()
	if c.MaxLeafing.Function != nil {
		out.MaxLeafing[ast.RuleFunction] = *c.MaxLeafing.Function
	}
	if c.MaxLeafing.Newline != nil {
		out.MaxLeafing[ast.RuleNewline] = *c.MaxLeafing.Newline
	}
	return out
}
