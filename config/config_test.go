package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 900 || cfg.Screen.Height != 650 {
		t.Errorf("screen = %dx%d, want 900x650", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Session.Duration != 60 {
		t.Errorf("duration = %v, want 60", cfg.Session.Duration)
	}
	if len(cfg.Chefs) != 2 {
		t.Errorf("chefs = %d, want 2", len(cfg.Chefs))
	}
	if len(cfg.Recipes) != 5 {
		t.Errorf("recipes = %d, want 5", len(cfg.Recipes))
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	overlay := "session:\n  duration: 90\ncoordination:\n  policy: shared\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.Duration != 90 {
		t.Errorf("duration = %v, want overridden 90", cfg.Session.Duration)
	}
	if cfg.Coordination.Policy != "shared" {
		t.Errorf("policy = %q, want shared", cfg.Coordination.Policy)
	}
	// Untouched fields keep their defaults.
	if cfg.Stock.RestockInterval != 4 {
		t.Errorf("restock interval = %v, want default 4", cfg.Stock.RestockInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing zone", func(c *Config) { delete(c.Kitchen.Zones, "delivery") }},
		{"no chefs", func(c *Config) { c.Chefs = nil }},
		{"no rest spots", func(c *Config) { c.Kitchen.RestSpots = nil }},
		{"no wait spots", func(c *Config) { c.Kitchen.WaitSpots = nil }},
		{"empty recipe", func(c *Config) { c.Recipes["ghost"] = nil }},
		{"unknown ingredient", func(c *Config) { c.Recipes["mystery"] = []string{"Z"} }},
		{"bad policy", func(c *Config) { c.Coordination.Policy = "chaotic" }},
		{"zero dt", func(c *Config) { c.Physics.DT = 0 }},
		{"arrive radius below step", func(c *Config) { c.Movement.ArriveRadius = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"B", "C", "H", "L", "T"}
	got := cfg.Derived.IngredientTypes
	if len(got) != len(want) {
		t.Fatalf("IngredientTypes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IngredientTypes[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Tiers are sorted by descending threshold so the first match wins.
	tiers := cfg.Scoring.Tiers
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinScore > tiers[i-1].MinScore {
			t.Errorf("tiers not descending at %d: %+v", i, tiers)
		}
	}
}

func TestClone(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	clone, err := cfg.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	clone.Chefs[0].Speed = 999
	clone.Recipes["salade"][0] = "X"
	if cfg.Chefs[0].Speed == 999 {
		t.Error("clone shares the chefs slice")
	}
	if cfg.Recipes["salade"][0] == "X" {
		t.Error("clone shares recipe slices")
	}
	if len(clone.Derived.IngredientTypes) == 0 {
		t.Error("clone should recompute derived values")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load round trip: %v", err)
	}
	if back.Session.Duration != cfg.Session.Duration {
		t.Error("round trip lost session duration")
	}
	if len(back.Recipes) != len(cfg.Recipes) {
		t.Error("round trip lost recipes")
	}
}
