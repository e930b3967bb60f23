// Package config loads the game's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/odds"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "twentyone.hcl"

// maxSimulations bounds the empirical sample size per chart refresh.
const maxSimulations = 1_000_000

// Config represents the complete game configuration.
type Config struct {
	Player     PlayerSettings
	Scoreboard ScoreboardSettings
	Chart      ChartSettings
	Log        LogSettings
}

// PlayerSettings pre-fills the name prompt.
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// ScoreboardSettings locates the persisted top scores.
type ScoreboardSettings struct {
	Path string `hcl:"path,optional"`
}

// ChartSettings picks the initial probability view.
type ChartSettings struct {
	Mode        string `hcl:"mode,optional"`
	Trials      int    `hcl:"trials,optional"`
	Simulations int    `hcl:"simulations,optional"`
}

// LogSettings controls the log file.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Player     *PlayerSettings     `hcl:"player,block"`
	Scoreboard *ScoreboardSettings `hcl:"scoreboard,block"`
	Chart      *ChartSettings      `hcl:"chart,block"`
	Log        *LogSettings        `hcl:"log,block"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scoreboard: ScoreboardSettings{Path: "twentyone-scores.json"},
		Chart: ChartSettings{
			Mode:        game.ChartRisk.String(),
			Trials:      odds.MinTrials,
			Simulations: odds.DefaultSimulations,
		},
		Log: LogSettings{
			Level: "info",
			File:  "twentyone.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; settings absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.merge(&raw)
	return config, nil
}

func (c *Config) merge(raw *fileConfig) {
	if raw.Player != nil {
		c.Player.Name = raw.Player.Name
	}
	if raw.Scoreboard != nil && raw.Scoreboard.Path != "" {
		c.Scoreboard.Path = raw.Scoreboard.Path
	}
	if chart := raw.Chart; chart != nil {
		if chart.Mode != "" {
			c.Chart.Mode = chart.Mode
		}
		if chart.Trials != 0 {
			c.Chart.Trials = chart.Trials
		}
		if chart.Simulations != 0 {
			c.Chart.Simulations = chart.Simulations
		}
	}
	if l := raw.Log; l != nil {
		if l.Level != "" {
			c.Log.Level = l.Level
		}
		if l.File != "" {
			c.Log.File = l.File
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Player.Name) > game.MaxNameLength {
		return fmt.Errorf("player name is longer than %d characters", game.MaxNameLength)
	}

	if c.Scoreboard.Path == "" {
		return fmt.Errorf("scoreboard path is required")
	}

	if _, ok := game.ParseChartMode(c.Chart.Mode); !ok {
		return fmt.Errorf("invalid chart mode: %s", c.Chart.Mode)
	}

	if !odds.ValidTrials(c.Chart.Trials) {
		return fmt.Errorf("chart trials must be between %d and %d", odds.MinTrials, odds.MaxTrials)
	}

	if c.Chart.Simulations <= 0 || c.Chart.Simulations > maxSimulations {
		return fmt.Errorf("chart simulations must be between 1 and %d", maxSimulations)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}

// ChartMode returns the configured chart as a game.ChartMode.
func (c *Config) ChartMode() game.ChartMode {
	mode, _ := game.ParseChartMode(c.Chart.Mode)
	return mode
}
