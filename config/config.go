// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/fit"
	"github.com/katalvlaran/numopt/newton"
	"github.com/katalvlaran/numopt/optimize"
)

// Format names a configuration syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Log formats accepted by LogConfig.Format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultFitDegree is the polynomial degree used when none is configured.
const DefaultFitDegree = 2

// Config holds every tunable of the toolkit.
type Config struct {
	Gradient GradientConfig `yaml:"gradient" toml:"gradient"`
	Search   SearchConfig   `yaml:"search" toml:"search"`
	Newton   NewtonConfig   `yaml:"newton" toml:"newton"`
	Fit      FitConfig      `yaml:"fit" toml:"fit"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// GradientConfig configures the finite differences used by the search and the fitter.
type GradientConfig struct {
	Step float64 `yaml:"step" toml:"step"`
}

// SearchConfig configures optimize.Maximize / optimize.Minimize.
type SearchConfig struct {
	Lambda      float64 `yaml:"lambda" toml:"lambda"`
	MaxSteps    int     `yaml:"max_steps" toml:"max_steps"`
	MaxError    float64 `yaml:"max_error" toml:"max_error"`
	MaxHalvings int     `yaml:"max_halvings" toml:"max_halvings"`
}

// NewtonConfig configures newton.Solve.
type NewtonConfig struct {
	Step     float64 `yaml:"step" toml:"step"`
	MaxSteps int     `yaml:"max_steps" toml:"max_steps"`
	MaxError float64 `yaml:"max_error" toml:"max_error"`
}

// FitConfig configures fit.CurveFit. Search tolerances come from SearchConfig.
type FitConfig struct {
	Lambda   float64 `yaml:"lambda" toml:"lambda"`
	MaxSteps int     `yaml:"max_steps" toml:"max_steps"`
	Degree   int     `yaml:"degree" toml:"degree"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the documented defaults of every package.
func Default() Config {
	return Config{
		Gradient: GradientConfig{Step: finitediff.DefaultStep},
		Search: SearchConfig{
			Lambda:      optimize.DefaultLambda,
			MaxSteps:    optimize.DefaultMaxSteps,
			MaxError:    optimize.DefaultMaxError,
			MaxHalvings: optimize.DefaultMaxHalvings,
		},
		Newton: NewtonConfig{
			Step:     finitediff.DefaultStep,
			MaxSteps: newton.DefaultMaxSteps,
			MaxError: newton.DefaultMaxError,
		},
		Fit: FitConfig{
			Lambda:   fit.DefaultLambda,
			MaxSteps: optimize.DefaultMaxSteps,
			Degree:   DefaultFitDegree,
		},
		Log: LogConfig{Level: logrus.InfoLevel.String(), Format: LogFormatText},
	}
}

// Load reads path, choosing the syntax from its extension (.yaml, .yml, .toml).
func Load(path string) (Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("Parse(yaml): %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("Parse(toml): %w", err)
		}
	default:
		return Config{}, fmt.Errorf("Parse(%s): %w", format, ErrUnsupportedFormat)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func formatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("extension %q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// Validate checks every value against the preconditions of the option
// constructors it feeds, so the conversions below never panic.
func (c Config) Validate() error {
	checks := []struct {
		key string
		val any
		ok  bool
	}{
		{"gradient.step", c.Gradient.Step, finitediff.ValidateStep(c.Gradient.Step) == nil},
		{"search.lambda", c.Search.Lambda, positive(c.Search.Lambda)},
		{"search.max_steps", c.Search.MaxSteps, c.Search.MaxSteps >= 0},
		{"search.max_error", c.Search.MaxError, tolerance(c.Search.MaxError)},
		{"search.max_halvings", c.Search.MaxHalvings, c.Search.MaxHalvings > 0},
		{"newton.step", c.Newton.Step, finitediff.ValidateStep(c.Newton.Step) == nil},
		{"newton.max_steps", c.Newton.MaxSteps, c.Newton.MaxSteps >= 0},
		{"newton.max_error", c.Newton.MaxError, tolerance(c.Newton.MaxError)},
		{"fit.lambda", c.Fit.Lambda, positive(c.Fit.Lambda)},
		{"fit.max_steps", c.Fit.MaxSteps, c.Fit.MaxSteps >= 0},
		{"fit.degree", c.Fit.Degree, c.Fit.Degree >= 0},
		{"log.format", c.Log.Format, c.Log.Format == LogFormatText || c.Log.Format == LogFormatJSON},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%s=%v: %w", chk.key, chk.val, ErrInvalidConfig)
		}
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return nil
}

func positive(v float64) bool  { return v > 0 && !math.IsInf(v, 0) }
func tolerance(v float64) bool { return v >= 0 && !math.IsInf(v, 0) }
