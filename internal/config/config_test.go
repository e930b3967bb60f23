package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/odds"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twentyone.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
player {
  name = "Ana"
}

scoreboard {
  path = "/tmp/scores.json"
}

chart {
  mode        = "pmf"
  trials      = 7
  simulations = 5000
}

log {
  level = "debug"
  file  = "game.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Ana", cfg.Player.Name)
	assert.Equal(t, "/tmp/scores.json", cfg.Scoreboard.Path)
	assert.Equal(t, game.ChartPMF, cfg.ChartMode())
	assert.Equal(t, 7, cfg.Chart.Trials)
	assert.Equal(t, 5000, cfg.Chart.Simulations)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "game.log", cfg.Log.File)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
chart {
  trials = 5
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, 5, cfg.Chart.Trials)
	assert.Equal(t, defaults.Chart.Mode, cfg.Chart.Mode)
	assert.Equal(t, odds.DefaultSimulations, cfg.Chart.Simulations)
	assert.Equal(t, defaults.Scoreboard, cfg.Scoreboard)
	assert.Equal(t, defaults.Log, cfg.Log)
	assert.Empty(t, cfg.Player.Name)
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax error", `chart { mode = `, "failed to parse HCL file"},
		{"unknown block", `table { seats = 6 }`, "failed to decode HCL"},
		{"wrong type", `chart { trials = "many" }`, "failed to decode HCL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"long name", func(c *Config) { c.Player.Name = "Bartholomew Quince" }, "player name"},
		{"empty scoreboard path", func(c *Config) { c.Scoreboard.Path = "" }, "scoreboard path"},
		{"bad chart mode", func(c *Config) { c.Chart.Mode = "pie" }, "invalid chart mode"},
		{"too few trials", func(c *Config) { c.Chart.Trials = 2 }, "chart trials"},
		{"too many trials", func(c *Config) { c.Chart.Trials = 11 }, "chart trials"},
		{"negative simulations", func(c *Config) { c.Chart.Simulations = -1 }, "chart simulations"},
		{"bad log level", func(c *Config) { c.Log.Level = "chatty" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
