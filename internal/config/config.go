package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/simplebank-dev/simplebank/internal/ledger"
)

// Config represents the top-level simplebank.yaml configuration.
type Config struct {
	Ledger LedgerConfig `yaml:"ledger"`
	Log    LogConfig    `yaml:"log"`
}

// LedgerConfig controls account numbering.
type LedgerConfig struct {
	IDPrefix string `yaml:"id_prefix" validate:"required,alphanum,max=8"`
	IDBase   int    `yaml:"id_base" validate:"gte=0,lte=999999999"`
	IDWidth  int    `yaml:"id_width" validate:"min=1,max=12"`
}

// LogConfig controls diagnostic logging to stderr.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads a simplebank.yaml file from disk. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config numbering accounts ACC1000, ACC1001, ...
func Default() *Config {
	opts := ledger.DefaultOptions()
	return &Config{
		Ledger: LedgerConfig{
			IDPrefix: opts.IDPrefix,
			IDBase:   opts.IDBase,
			IDWidth:  opts.IDWidth,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s fails %q (got %v)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// LedgerOptions converts the ledger section into ledger.Options.
func (c *Config) LedgerOptions() ledger.Options {
	return ledger.Options{
		IDPrefix: c.Ledger.IDPrefix,
		IDBase:   c.Ledger.IDBase,
		IDWidth:  c.Ledger.IDWidth,
	}
}

// SlogLevel maps Log.Level onto a slog.Level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel maps "debug", "info", "warn", or "error" onto a slog.Level.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}
