package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/arthur-debert/dp/pkg/rules"
	"github.com/arthur-debert/dp/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceTime = time.Date(2019, time.November, 10, 0, 0, 0, 0, time.UTC)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{SkipUserConfig: true})
	require.NoError(t, err)

	assert.False(t, cfg.Fallthrough)
	assert.False(t, cfg.WholePath)
	require.Len(t, cfg.Rules, 5)
	assert.Equal(t, rules.Spec{Kind: "date", Pattern: `\d{2}-\d{2}`, Format: "%m-%d"}, cfg.Rules[0])
	assert.Equal(t, rules.Spec{Kind: "date", Pattern: `\d{4}_\d{2}_\d{2}`, Format: "%Y_%m_%d"}, cfg.Rules[3])
	assert.Equal(t, "increment", cfg.Rules[4].Kind)
	assert.Contains(t, DefaultContent(), "[[rules]]")
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("toml_replaces_chain", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "dp.toml", `
fallthrough = true

[[rules]]
kind = "date"
pattern = '\d{2}'
format = "%d"

[[rules]]
kind = "increment"
`)
		cfg, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
		require.NoError(t, err)

		assert.True(t, cfg.Fallthrough)
		assert.Equal(t, []rules.Spec{
			{Kind: "date", Pattern: `\d{2}`, Format: "%d"},
			{Kind: "increment"},
		}, cfg.Rules)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "dp.yaml", `
whole_path: true
rules:
  - kind: increment
`)
		cfg, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
		require.NoError(t, err)

		assert.True(t, cfg.WholePath)
		assert.Equal(t, []rules.Spec{{Kind: "increment"}}, cfg.Rules)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "dp.ini", "fallthrough=1")
		_, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("malformed_toml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "dp.toml", "fallthrough = = true")
		_, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("rule_without_kind", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "dp.toml", "[[rules]]\npattern = 'x'\n")
		_, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestLoadUserConfig(t *testing.T) {
	configHome := t.TempDir()
	writeConfig(t, configHome, "dp/config.toml", "fallthrough = true\n")

	// Registered before Setenv so it runs after the variable is restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.Fallthrough)
	assert.Len(t, cfg.Rules, 5, "user config without rules keeps the default chain")
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "dp.toml", "fallthrough = true\nwhole_path = true\n")

	t.Setenv("DP_FALLTHROUGH", "false")

	cfg, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
	require.NoError(t, err)
	assert.False(t, cfg.Fallthrough, "environment overrides the config file")
	assert.True(t, cfg.WholePath)

	cfg, err = Load(LoadOptions{
		SkipUserConfig: true,
		ConfigFile:     path,
		Overrides:      map[string]interface{}{"fallthrough": true},
	})
	require.NoError(t, err)
	assert.True(t, cfg.Fallthrough, "overrides win over the environment")
}

func TestBuildRules(t *testing.T) {
	cfg := &Config{Rules: []rules.Spec{
		{Kind: "date", Pattern: `\d{2}`, Format: "%d"},
		{Kind: "increment"},
	}}

	chain, err := cfg.BuildRules(referenceTime, vfs.NewMemory())
	require.NoError(t, err)
	require.Len(t, chain, 2)

	got, ok, err := chain[0].Apply("2023-notes/meeting-23.org")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2023-notes/meeting-10.org", got)

	cfg.WholePath = true
	chain, err = cfg.BuildRules(referenceTime, vfs.NewMemory())
	require.NoError(t, err)
	got, _, err = chain[1].Apply("dir-1/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "dir-2/notes.txt", got)

	cfg.Rules = append(cfg.Rules, rules.Spec{Kind: "shuffle"})
	_, err = cfg.BuildRules(referenceTime, vfs.NewMemory())
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRule))
}

func TestMarshal(t *testing.T) {
	cfg := &Config{
		Fallthrough: true,
		Rules:       []rules.Spec{{Kind: "date", Pattern: `\d{2}`, Format: "%d"}, {Kind: "increment"}},
	}

	out, err := Marshal(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "fallthrough = true")
	assert.Contains(t, string(out), "[[rules]]")
	assert.Regexp(t, `kind = ['"]increment['"]`, string(out))

	out, err = Marshal(cfg, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "fallthrough: true")
	assert.Contains(t, string(out), "- kind: increment")

	_, err = Marshal(cfg, "json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMarshalRoundTripThroughLoad(t *testing.T) {
	cfg := &Config{WholePath: true, Rules: []rules.Spec{{Kind: "increment"}}}

	out, err := Marshal(cfg, "toml")
	require.NoError(t, err)
	path := writeConfig(t, t.TempDir(), "dp.toml", string(out))

	loaded, err := Load(LoadOptions{SkipUserConfig: true, ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
