// SPDX-License-Identifier: MIT

// Package config reads the YAML description of a line-profile run: the
// emitting species, the cloud, the observing geometry and the velocity grid.
//
// Physical inputs stay in the units astronomers write them in (cm, K,
// cm⁻³); velocities are given in km/s and converted to cm/s on the way into
// lineprof.Compute.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lineprof"
	"github.com/katalvlaran/lineprof/emitter"
	"github.com/katalvlaran/lineprof/profile"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// kms converts km/s to cm/s.
const kms = 1e5

// Config holds one line-profile run.
type Config struct {
	Name string `yaml:"name"`

	// Emitting species, either inline or loaded from EmitterFile.
	Emitter     *emitter.File `yaml:"emitter,omitempty"`
	EmitterFile string        `yaml:"emitter_file,omitempty"`
	Upper       int           `yaml:"upper"`
	Lower       int           `yaml:"lower"`

	// Cloud structure
	Radius      float64      `yaml:"radius_cm"`
	Density     ProfileSpec  `yaml:"density"`
	Temperature ProfileSpec  `yaml:"temperature"`
	Velocity    *ProfileSpec `yaml:"velocity,omitempty"`
	Dispersion  *ProfileSpec `yaml:"dispersion,omitempty"`

	// Observation
	Offset         float64    `yaml:"offset"`
	Background     float64    `yaml:"background_k"`
	BeamDispersion float64    `yaml:"beam_dispersion"`
	Grid           GridConfig `yaml:"grid"`

	// Numerics
	StepBudget        int  `yaml:"step_budget"`
	Workers           int  `yaml:"workers"`
	ResonanceFallback bool `yaml:"resonance_fallback"`
}

// GridConfig selects the output velocities. Precedence follows
// lineprof.Grid: velocities, then limits, then spacing, then automatic.
type GridConfig struct {
	Velocities []float64 `yaml:"velocities_kms,omitempty"`
	Limits     []float64 `yaml:"limits_kms,omitempty"` // [vmin, vmax]
	Spacing    float64   `yaml:"spacing_kms,omitempty"`
	Count      int       `yaml:"count"`
}

// DefaultConfig returns a configuration with every optional field at its
// library default. Species, radius, density and temperature must still be
// supplied.
func DefaultConfig() *Config {
	return &Config{
		Upper:      1,
		Lower:      0,
		Background: 2.73,
		Grid:       GridConfig{Count: lineprof.DefaultCount},
		StepBudget: 10000,
	}
}

// Load reads a YAML configuration from path on top of DefaultConfig and
// applies environment overrides. A relative EmitterFile is resolved against
// the directory of path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if cfg.EmitterFile != "" && !filepath.IsAbs(cfg.EmitterFile) {
		cfg.EmitterFile = filepath.Join(filepath.Dir(path), cfg.EmitterFile)
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides lets batch jobs tune effort without editing files.
func (c *Config) applyEnvOverrides() {
	if n, err := strconv.Atoi(os.Getenv("LINEPROF_WORKERS")); err == nil {
		c.Workers = n
	}
	if n, err := strconv.Atoi(os.Getenv("LINEPROF_STEP_BUDGET")); err == nil {
		c.StepBudget = n
	}
}

// Validate checks the fields that lineprof.Compute cannot check itself.
func (c *Config) Validate() error {
	if (c.Emitter == nil) == (c.EmitterFile == "") {
		return fmt.Errorf("%w: exactly one of emitter and emitter_file must be set", ErrInvalidConfig)
	}
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: radius_cm must be positive, got %g", ErrInvalidConfig, c.Radius)
	}
	specs := []struct {
		name string
		spec *ProfileSpec
	}{
		{"density", &c.Density},
		{"temperature", &c.Temperature},
		{"velocity", c.Velocity},
		{"dispersion", c.Dispersion},
	}
	for _, s := range specs {
		if s.spec == nil {
			continue
		}
		if err := s.spec.validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, s.name, err)
		}
	}
	if n := len(c.Grid.Limits); n != 0 && n != 2 {
		return fmt.Errorf("%w: grid.limits_kms needs 2 values, got %d", ErrInvalidConfig, n)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be ≥ 0, got %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// BuildEmitter returns the species table, reading EmitterFile if needed.
func (c *Config) BuildEmitter() (*emitter.Table, error) {
	if c.Emitter != nil {
		return c.Emitter.Build()
	}
	f, err := os.Open(c.EmitterFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open emitter file: %w", err)
	}
	defer f.Close()

	return emitter.LoadYAML(f)
}

// Options translates the run settings into lineprof options. Workers = 0
// keeps the library default.
func (c *Config) Options(logger *zap.Logger) []lineprof.Option {
	opts := []lineprof.Option{
		lineprof.WithOffset(c.Offset),
		lineprof.WithBackground(c.Background),
		lineprof.WithBeamDispersion(c.BeamDispersion),
		lineprof.WithStepBudget(c.StepBudget),
		lineprof.WithCount(c.Grid.Count),
		lineprof.WithResonanceFallback(c.ResonanceFallback),
	}
	if c.Velocity != nil {
		opts = append(opts, lineprof.WithVelocity(c.Velocity.Profile()))
	}
	if c.Dispersion != nil {
		opts = append(opts, lineprof.WithDispersion(c.Dispersion.Profile()))
	}
	if c.Grid.Velocities != nil {
		vs := make([]float64, len(c.Grid.Velocities))
		for i, v := range c.Grid.Velocities {
			vs[i] = v * kms
		}
		opts = append(opts, lineprof.WithVelocities(vs...))
	}
	if len(c.Grid.Limits) == 2 {
		opts = append(opts, lineprof.WithVelocityLimits(c.Grid.Limits[0]*kms, c.Grid.Limits[1]*kms))
	}
	if c.Grid.Spacing != 0 {
		opts = append(opts, lineprof.WithSpacing(c.Grid.Spacing*kms))
	}
	if c.Workers > 0 {
		opts = append(opts, lineprof.WithWorkers(c.Workers))
	}
	if logger != nil {
		opts = append(opts, lineprof.WithLogger(logger))
	}

	return opts
}

// Profiles returns the density and temperature profiles.
func (c *Config) Profiles() (density, temperature profile.Profile) {
	return c.Density.Profile(), c.Temperature.Profile()
}
