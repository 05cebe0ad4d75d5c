package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// Prefix is prepended to every environment variable name
const Prefix = "HAUL_"

// Config holds runtime settings fixed at startup
type Config struct {
	// Scene is a YAML scene path, empty uses the built-in scene
	Scene string `env:"SCENE"`

	Tick     time.Duration `env:"TICK" envDefault:"20ms"`
	Debug    bool          `env:"DEBUG"`
	Audio    bool          `env:"AUDIO" envDefault:"true"`
	CellSize float64       `env:"CELL_SIZE"` // 0 defers to the scene, then the default
	Seed     uint64        `env:"SEED"`

	// RebindPolicy decides what happens to an active carry when another treasure is selected
	RebindPolicy string `env:"REBIND_POLICY" envDefault:"discard"`

	// Tether clamps carriers to the carry radius every tick
	Tether bool `env:"TETHER"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom parses an explicit variable map instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// BindFlags registers flag overrides defaulting to the values already loaded
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene YAML file (default: built-in)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick interval")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/treasure-haul.log")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "enable sound effects")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "world units per terminal cell, 0 uses the scene value")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "effect random seed, 0 for time-based")
	fs.StringVar(&c.RebindPolicy, "rebind", c.RebindPolicy, "treasure rebind policy: discard or release")
	fs.BoolVar(&c.Tether, "tether", c.Tether, "clamp carriers to the carry radius")
}

// Validate rejects values no system can run with
func (c *Config) Validate() error {
	var errs []error
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", c.Tick))
	}
	if c.CellSize < 0 {
		errs = append(errs, fmt.Errorf("cell size must not be negative, got %v", c.CellSize))
	}
	switch c.RebindPolicy {
	case parameter.RebindDiscard, parameter.RebindRelease:
	default:
		errs = append(errs, fmt.Errorf("unknown rebind policy %q", c.RebindPolicy))
	}
	return errors.Join(errs...)
}

// Apply copies gameplay switches into the world config resource
func (c *Config) Apply(r *engine.ConfigResource) {
	r.RebindPolicy = c.RebindPolicy
	r.Tether = c.Tether
	r.Seed = c.Seed
}
