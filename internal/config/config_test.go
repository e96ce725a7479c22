package config

import (
	"os"
	"testing"

	"github.com/Scrimzay/icefall/internal/world"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ICEFALL_LAYOUT", "ICEFALL_RADIUS", "ICEFALL_STRESS", "ICEFALL_MAX_PASSES", "ICEFALL_SEED", "ICEFALL_BASE_FRICTION", "ICEFALL_FRICTION_JITTER", "ICEFALL_FRICTION_OFFSET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Port != "8000" || cfg.Layout != "classic" {
		t.Fatalf("defaults = %q %q", cfg.Port, cfg.Layout)
	}

	bc := world.DefaultConfig()
	cfg.Tune(&bc)
	def := world.DefaultConfig()
	if bc.Radius != def.Radius || bc.MaxPasses != def.MaxPasses || bc.Stress != def.Stress || bc.FrictionOffset != def.FrictionOffset {
		t.Fatalf("empty overrides changed config: %+v", bc)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("ICEFALL_LAYOUT", "glacier")
	t.Setenv("ICEFALL_SEED", "42")
	t.Setenv("ICEFALL_RADIUS", "5")
	t.Setenv("ICEFALL_MAX_PASSES", "8")
	t.Setenv("ICEFALL_FRICTION_OFFSET", "1.2")
	t.Setenv("ICEFALL_STRESS", "0,0.2,0.5,0.9")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Port != "9100" || cfg.Layout != "glacier" || cfg.Seed != 42 {
		t.Fatalf("parsed %+v", cfg)
	}

	bc := world.DefaultConfig()
	cfg.Tune(&bc)
	if bc.Radius != 5 || bc.MaxPasses != 8 || bc.FrictionOffset != 1.2 {
		t.Fatalf("tuned %+v", bc)
	}
	want := world.StressTable{FourPlus: 0, Three: 0.2, Two: 0.5, OneOrLess: 0.9}
	if bc.Stress != want {
		t.Fatalf("stress = %+v, want %+v", bc.Stress, want)
	}
}

func TestParseRejectsShortStress(t *testing.T) {
	t.Setenv("ICEFALL_STRESS", "0.1,0.2")
	if _, err := Parse(); err == nil {
		t.Fatal("expected error for 2 stress values")
	}
}

func TestParseExplicitZeroOverrides(t *testing.T) {
	t.Setenv("ICEFALL_BASE_FRICTION", "0")
	t.Setenv("ICEFALL_FRICTION_JITTER", "0")
	for _, key := range []string{"ICEFALL_RADIUS", "ICEFALL_FRICTION_OFFSET", "ICEFALL_MAX_PASSES", "ICEFALL_STRESS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.BaseFriction == nil || cfg.FrictionJitter == nil {
		t.Fatal("explicit zeros should parse as set")
	}
	if cfg.Radius != nil || cfg.MaxPasses != nil || cfg.FrictionOffset != nil {
		t.Fatalf("unset overrides parsed as set: %+v", cfg)
	}

	bc := world.LookupLayout("classic").Config()
	cfg.Tune(&bc)
	if bc.BaseFriction != 0 || bc.FrictionJitter != 0 {
		t.Fatalf("base=%.2f jitter=%.2f, want both 0", bc.BaseFriction, bc.FrictionJitter)
	}
	if bc.Radius != 3 || bc.MaxPasses != world.DefaultMaxPasses {
		t.Fatalf("untouched fields changed: %+v", bc)
	}
	if err := bc.Validate(); err != nil {
		t.Fatalf("zero friction config rejected: %v", err)
	}
}
