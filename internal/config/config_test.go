package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.IDPrefix = "SB"
	cfg.Ledger.IDBase = 1
	cfg.Ledger.IDWidth = 6
	cfg.Log.Level = "debug"

	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger, got.Ledger)
	assert.Equal(t, cfg.Log, got.Log)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "ACC", cfg.Ledger.IDPrefix)
	assert.Equal(t, 1000, cfg.Ledger.IDBase)
	assert.Equal(t, 4, cfg.Ledger.IDWidth)
	assert.Equal(t, "warn", cfg.Log.Level)
	require.NoError(t, cfg.Validate())

	opts := cfg.LedgerOptions()
	assert.Equal(t, "ACC", opts.IDPrefix)
	assert.Equal(t, 1000, opts.IDBase)
	assert.Equal(t, 4, opts.IDWidth)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  id_base: 5000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Ledger.IDBase)
	assert.Equal(t, "ACC", cfg.Ledger.IDPrefix)
	assert.Equal(t, 4, cfg.Ledger.IDWidth)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty prefix", func(c *Config) { c.Ledger.IDPrefix = "" }, "ledger.id_prefix"},
		{"prefix with symbols", func(c *Config) { c.Ledger.IDPrefix = "AC-C" }, "ledger.id_prefix"},
		{"negative base", func(c *Config) { c.Ledger.IDBase = -1 }, "ledger.id_base"},
		{"base near int overflow", func(c *Config) { c.Ledger.IDBase = 9223372036854775807 }, "ledger.id_base"},
		{"zero width", func(c *Config) { c.Ledger.IDWidth = 0 }, "ledger.id_width"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  id_width: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "id_prefix: ACC")
	assert.Contains(t, contents, "id_base: 1000")
	assert.Contains(t, contents, "id_width: 4")
	assert.Contains(t, contents, "level: warn")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("nonsense"))

	cfg := Default()
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadRejectsOverflowingBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplebank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledger:\n  id_base: 9223372036854775807\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger.id_base")

	cfg := Default()
	cfg.Ledger.IDBase = 999999999
	assert.NoError(t, cfg.Validate())
}
