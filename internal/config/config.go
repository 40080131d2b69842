package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"tesseract/casing"
)

// DefaultFile is the file Load looks for when no path is given.
const DefaultFile = "tesseract.yaml"

// Environment variables overriding file settings.
const (
	EnvKeyCase = "TESSERACT_KEY_CASE"
	EnvOutput  = "TESSERACT_OUTPUT"
)

// Config is the generator configuration.
type Config struct {
	Version string `yaml:"version"`
	// KeyCase is the casing attribute keys are normalized to.
	KeyCase string `yaml:"key_case"`
	// Output is the name of the generated file in each package.
	Output string `yaml:"output"`
	// Receiver is the receiver name of generated methods.
	Receiver string `yaml:"receiver"`
	// Packages are the patterns used when none are given on the command line.
	Packages []string `yaml:"packages,omitempty"`
	// Comments controls doc comments on generated methods. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads the file at path. An empty path loads DefaultFile from the
// current directory if it exists and falls back to Default otherwise.
// Environment overrides are applied and the result is validated.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)

	switch {
	case path != "":
		cfg, err = LoadFile(path)
	case fileExists(DefaultFile):
		cfg, err = LoadFile(DefaultFile)
	default:
		cfg = Default()
	}

	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.KeyCase == "" {
		cfg.KeyCase = casing.SnakeCase.ConfigName()
	}

	if cfg.Output == "" {
		cfg.Output = "html_gen.go"
	}

	if cfg.Receiver == "" {
		cfg.Receiver = "e"
	}

	if cfg.Comments == nil {
		on := true
		cfg.Comments = &on
	}
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvKeyCase); ok && v != "" {
		c.KeyCase = v
	}

	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = v
	}
}

// reservedReceivers are identifiers the generated methods refer to, or cannot
// read fields through.
var reservedReceivers = map[string]bool{
	"_":      true,
	"markup": true,
	"string": true,
	"nil":    true,
}

// Validate checks the configuration for values the generator cannot use.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != "1" {
		errs = append(errs, fmt.Errorf("unsupported config version %q", c.Version))
	}

	if _, err := casing.ParseStyle(c.KeyCase); err != nil {
		errs = append(errs, fmt.Errorf("key_case: %w", err))
	}

	if !strings.HasSuffix(c.Output, ".go") || strings.HasSuffix(c.Output, "_test.go") ||
		filepath.Base(c.Output) != c.Output {
		errs = append(errs, fmt.Errorf("output %q must be a plain .go file name", c.Output))
	}

	switch {
	case !token.IsIdentifier(c.Receiver):
		errs = append(errs, fmt.Errorf("receiver %q is not a Go identifier", c.Receiver))
	case reservedReceivers[c.Receiver]:
		errs = append(errs, fmt.Errorf("receiver %q cannot be used in generated methods", c.Receiver))
	}

	return errors.Join(errs...)
}

// KeyStyle returns the parsed key casing. Call Validate first.
func (c *Config) KeyStyle() casing.Style {
	s, err := casing.ParseStyle(c.KeyCase)
	if err != nil {
		return casing.SnakeCase
	}

	return s
}

// EmitComments reports whether generated methods get doc comments.
func (c *Config) EmitComments() bool {
	return c.Comments == nil || *c.Comments
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes cfg to path, replacing any existing file atomically.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
