// Package config provides configuration loading and access for the kitchen simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Zone names every layout must define.
var requiredZones = []string{"fridge_access", "cutting_board", "plating_station", "delivery"}

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig                `yaml:"screen"`
	Physics      PhysicsConfig               `yaml:"physics"`
	Session      SessionConfig               `yaml:"session"`
	Movement     MovementConfig              `yaml:"movement"`
	Kitchen      KitchenConfig               `yaml:"kitchen"`
	Stock        StockConfig                 `yaml:"stock"`
	Recipes      map[string][]string         `yaml:"recipes"`
	Ingredients  map[string]IngredientConfig `yaml:"ingredients"`
	Plating      PlatingConfig               `yaml:"plating"`
	Chefs        []ChefConfig                `yaml:"chefs"`
	Motivation   MotivationConfig            `yaml:"motivation"`
	Scoring      ScoringConfig               `yaml:"scoring"`
	Coordination CoordinationConfig          `yaml:"coordination"`
	Telemetry    TelemetryConfig             `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds simulation timestep parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"`
}

// SessionConfig holds session timing parameters.
type SessionConfig struct {
	Duration         float64 `yaml:"duration"`           // Session length in seconds
	ComboDecayWindow float64 `yaml:"combo_decay_window"` // Seconds of delivery inactivity before combo drops
}

// MovementConfig holds agent movement parameters.
type MovementConfig struct {
	ArriveRadius float64 `yaml:"arrive_radius"` // Must exceed the per-tick step of the fastest chef
}

// KitchenConfig holds the kitchen floor plan.
type KitchenConfig struct {
	Bounds    BoundsConfig          `yaml:"bounds"`
	Zones     map[string]ZoneConfig `yaml:"zones"`
	RestSpots []PointConfig         `yaml:"rest_spots"`
	WaitSpots []PointConfig         `yaml:"wait_spots"`
}

// BoundsConfig holds the playable area limits.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// ZoneConfig holds a rectangular kitchen zone.
type ZoneConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PointConfig holds a 2D coordinate pair.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// StockConfig holds ingredient pool parameters.
type StockConfig struct {
	RestockInterval float64 `yaml:"restock_interval"` // Seconds between restock passes
	LowWaterMark    int     `yaml:"low_water_mark"`   // Respawn when available count drops below this
	SpawnDelay      float64 `yaml:"spawn_delay"`      // Seconds before a spawned unit becomes pickable
	InitialPerType  int     `yaml:"initial_per_type"`
	SlotSpacing     float64 `yaml:"slot_spacing"` // Sub-slot pitch inside the fridge zone
}

// IngredientConfig holds per-type ingredient parameters.
type IngredientConfig struct {
	Name     string       `yaml:"name"`
	PrepTime float64      `yaml:"prep_time"` // Chopping duration in seconds
	Bin      *PointConfig `yaml:"bin"`       // Optional dedicated bin; nil = shared fridge access
}

// PlatingConfig holds plating station parameters.
type PlatingConfig struct {
	Duration float64 `yaml:"duration"`
}

// ChefConfig defines one chef agent.
type ChefConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"` // World units per second
}

// MotivationConfig holds the delivery feedback loop parameters.
type MotivationConfig struct {
	GainPerDelivery float64 `yaml:"gain_per_delivery"`
	Max             float64 `yaml:"max"`
}

// ScoringConfig holds delivery scoring parameters.
type ScoringConfig struct {
	BasePerIngredient int          `yaml:"base_per_ingredient"`
	PlatingBonus      int          `yaml:"plating_bonus"`
	ComboMultiplier   int          `yaml:"combo_multiplier"`
	SpeedBonusMax     float64      `yaml:"speed_bonus_max"`
	SpeedBonusDecay   float64      `yaml:"speed_bonus_decay"` // Bonus points lost per second of claim-to-delivery time
	Tiers             []TierConfig `yaml:"tiers"`
}

// TierConfig maps a score threshold to a performance title.
type TierConfig struct {
	MinScore int    `yaml:"min_score"`
	Title    string `yaml:"title"`
}

// CoordinationConfig selects the order assignment policy.
type CoordinationConfig struct {
	Policy string `yaml:"policy"` // "independent" or "shared"
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	IngredientTypes []string // Sorted type codes, for deterministic iteration
	TicksPerSecond  float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Clone returns a deep copy via a YAML round-trip. Used by the tuner
// and by tests that mutate config per run.
func (c *Config) Clone() (*Config, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	out := &Config{}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("unmarshaling config copy: %w", err)
	}
	out.computeDerived()
	return out, nil
}

// Validate checks structural requirements that must hold before a session starts.
// Zone and recipe problems are startup failures, never tolerated mid-session.
func (c *Config) Validate() error {
	for _, name := range requiredZones {
		if _, ok := c.Kitchen.Zones[name]; !ok {
			return fmt.Errorf("config: missing kitchen zone %q", name)
		}
	}

	if len(c.Chefs) == 0 {
		return fmt.Errorf("config: at least one chef is required")
	}
	if len(c.Kitchen.RestSpots) == 0 {
		return fmt.Errorf("config: at least one rest spot is required")
	}
	if len(c.Kitchen.WaitSpots) == 0 {
		return fmt.Errorf("config: at least one wait spot is required")
	}

	for dish, required := range c.Recipes {
		if len(required) == 0 {
			return fmt.Errorf("config: recipe %q has no ingredients", dish)
		}
		for _, ing := range required {
			if _, ok := c.Ingredients[ing]; !ok {
				return fmt.Errorf("config: recipe %q references unknown ingredient %q", dish, ing)
			}
		}
	}

	switch c.Coordination.Policy {
	case "independent", "shared":
	default:
		return fmt.Errorf("config: unknown coordination policy %q", c.Coordination.Policy)
	}

	if c.Physics.DT <= 0 {
		return fmt.Errorf("config: physics dt must be positive")
	}

	// An arrive radius at or below the per-tick step makes agents orbit
	// their targets forever.
	for _, chef := range c.Chefs {
		step := chef.Speed * c.Physics.DT
		if c.Movement.ArriveRadius <= step {
			return fmt.Errorf("config: arrive_radius %.1f must exceed per-tick step %.1f of chef %q",
				c.Movement.ArriveRadius, step, chef.Name)
		}
	}

	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	types := make([]string, 0, len(c.Ingredients))
	for t := range c.Ingredients {
		types = append(types, t)
	}
	sort.Strings(types)
	c.Derived.IngredientTypes = types
	c.Derived.TicksPerSecond = 1.0 / c.Physics.DT

	// Sort tiers descending so the first match wins
	sort.Slice(c.Scoring.Tiers, func(i, j int) bool {
		return c.Scoring.Tiers[i].MinScore > c.Scoring.Tiers[j].MinScore
	})
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
