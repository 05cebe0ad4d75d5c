package config

import (
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/parameter"
)

func TestLoadDefaults(t *testing.T) {
	c, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Tick != 20*time.Millisecond {
		t.Errorf("Tick = %v, want 20ms", c.Tick)
	}
	if !c.Audio || c.Debug || c.Tether {
		t.Errorf("bool defaults = audio %v debug %v tether %v", c.Audio, c.Debug, c.Tether)
	}
	if c.RebindPolicy != parameter.RebindDiscard {
		t.Errorf("RebindPolicy = %q", c.RebindPolicy)
	}
	if c.CellSize != 0 {
		t.Errorf("CellSize = %v", c.CellSize)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFromVars(t *testing.T) {
	c, err := LoadFrom(map[string]string{
		"HAUL_SCENE":         "yard.yaml",
		"HAUL_TICK":          "50ms",
		"HAUL_AUDIO":         "false",
		"HAUL_REBIND_POLICY": "release",
		"HAUL_TETHER":        "true",
		"HAUL_SEED":          "42",
		"HAUL_CELL_SIZE":     "0.5",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Scene != "yard.yaml" || c.Tick != 50*time.Millisecond || c.Audio || !c.Tether || c.Seed != 42 || c.CellSize != 0.5 {
		t.Errorf("config = %+v", c)
	}
	if c.RebindPolicy != parameter.RebindRelease {
		t.Errorf("RebindPolicy = %q", c.RebindPolicy)
	}
}

func TestLoadFromError(t *testing.T) {
	_, err := LoadFrom(map[string]string{"HAUL_TICK": "soon"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestFlagsOverride(t *testing.T) {
	c, err := LoadFrom(map[string]string{"HAUL_REBIND_POLICY": "release"})
	if err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.BindFlags(fs)
	if err := fs.Parse([]string{"-rebind", "discard", "-tether"}); err != nil {
		t.Fatal(err)
	}
	if c.RebindPolicy != parameter.RebindDiscard || !c.Tether {
		t.Errorf("after flags: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		want string
	}{
		{"bad policy", func(c *Config) { c.RebindPolicy = "keep" }, "rebind policy"},
		{"zero tick", func(c *Config) { c.Tick = 0 }, "tick"},
		{"negative cell", func(c *Config) { c.CellSize = -1 }, "cell size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := LoadFrom(map[string]string{})
			tt.mut(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	c := &Config{RebindPolicy: parameter.RebindRelease, Tether: true, Seed: 7}
	var r engine.ConfigResource
	c.Apply(&r)
	if r.RebindPolicy != parameter.RebindRelease || !r.Tether || r.Seed != 7 {
		t.Errorf("resource = %+v", r)
	}
}
