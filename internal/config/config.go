// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Scrimzay/icefall/internal/world"
)

// Config holds env settings. Unset board overrides keep whatever the selected
// layout says.
type Config struct {
	Port   string `env:"PORT" envDefault:"8000"`
	Layout string `env:"ICEFALL_LAYOUT" envDefault:"classic"`
	Seed   uint64 `env:"ICEFALL_SEED"` // 0 seeds from the clock

	// nil leaves the layout value alone; an explicit 0 is applied
	Radius         *int     `env:"ICEFALL_RADIUS"`
	BaseFriction   *float64 `env:"ICEFALL_BASE_FRICTION"`
	FrictionJitter *float64 `env:"ICEFALL_FRICTION_JITTER"`
	FrictionOffset *float64 `env:"ICEFALL_FRICTION_OFFSET"`
	MaxPasses      *int     `env:"ICEFALL_MAX_PASSES"`
	// four chances for >=4, 3, 2 and <=1 intact neighbors
	Stress []float64 `env:"ICEFALL_STRESS" envSeparator:","`
}

// Parse loads Config from the process environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if n := len(cfg.Stress); n != 0 && n != 4 {
		return Config{}, fmt.Errorf("ICEFALL_STRESS: want 4 values, got %d", n)
	}
	return cfg, nil
}

// Tune applies the overrides to a board config.
func (c Config) Tune(bc *world.Config) {
	if c.Radius != nil {
		bc.Radius = *c.Radius
	}
	if c.BaseFriction != nil {
		bc.BaseFriction = *c.BaseFriction
	}
	if c.FrictionJitter != nil {
		bc.FrictionJitter = *c.FrictionJitter
	}
	if c.FrictionOffset != nil {
		bc.FrictionOffset = *c.FrictionOffset
	}
	if c.MaxPasses != nil {
		bc.MaxPasses = *c.MaxPasses
	}
	if len(c.Stress) == 4 {
		bc.Stress = world.StressTable{
			FourPlus:  c.Stress[0],
			Three:     c.Stress[1],
			Two:       c.Stress[2],
			OneOrLess: c.Stress[3],
		}
	}
}
