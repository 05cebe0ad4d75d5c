package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/treasure-haul/vmath"
)

// File is the decoded designer scene
type File struct {
	Name       string          `yaml:"name"`
	CellSize   float64         `yaml:"cell_size"`
	Characters []CharacterSpec `yaml:"characters"`
	Treasures  []TreasureSpec  `yaml:"treasures"`
	Goals      []GoalSpec      `yaml:"goals"`
}

// Vec is a scene-file position, Z defaults to the ground plane
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec) World() vmath.Vec3F {
	return vmath.Vec3F{X: v.X, Y: v.Y, Z: v.Z}
}

type CharacterSpec struct {
	Name             string  `yaml:"name"`
	Tag              string  `yaml:"tag"`
	Position         Vec     `yaml:"position"`
	Color            string  `yaml:"color"`
	RestrictedColor  string  `yaml:"restricted_color"`
	ShakeAmplitude   float64 `yaml:"shake_amplitude"`
	ShakeDurationMs  int     `yaml:"shake_duration_ms"`
	Speed            float64 `yaml:"speed"`
	StoppingDistance float64 `yaml:"stopping_distance"`
}

// ShakeDuration is the restriction effect length, 0 when unset
func (c CharacterSpec) ShakeDuration() time.Duration {
	return time.Duration(c.ShakeDurationMs) * time.Millisecond
}

type TreasureSpec struct {
	Name        string  `yaml:"name"`
	Tag         string  `yaml:"tag"`
	Position    Vec     `yaml:"position"`
	Color       string  `yaml:"color"`
	Weight      int     `yaml:"weight"`
	CarryRadius float64 `yaml:"carry_radius"`
}

type GoalSpec struct {
	Name       string   `yaml:"name"`
	AllowedTag string   `yaml:"allowed_tag"`
	Min        Vec      `yaml:"min"`
	Max        Vec      `yaml:"max"`
	Assigned   []string `yaml:"assigned"`
}

// Load reads, validates and decodes a scene file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates raw YAML against the scene schema, decodes it and checks cross references
func Parse(raw []byte) (*File, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// check enforces the rules the schema cannot express
func (f *File) check() error {
	var errs []error
	names := make(map[string]bool)
	unique := func(kind, name string) {
		if names[name] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate name", kind, name))
		}
		names[name] = true
	}
	color := func(kind, name, field, value string) {
		if value == "" {
			return
		}
		if _, ok := parseColor(value); !ok {
			errs = append(errs, fmt.Errorf("%s %q: unknown %s %q", kind, name, field, value))
		}
	}

	for _, c := range f.Characters {
		unique("character", c.Name)
		color("character", c.Name, "color", c.Color)
		color("character", c.Name, "restricted_color", c.RestrictedColor)
	}
	for _, t := range f.Treasures {
		unique("treasure", t.Name)
		color("treasure", t.Name, "color", t.Color)
	}

	goals := make(map[string]bool)
	for _, g := range f.Goals {
		if goals[g.Name] {
			errs = append(errs, fmt.Errorf("goal %q: duplicate name", g.Name))
		}
		goals[g.Name] = true
		if g.Max.X < g.Min.X || g.Max.Y < g.Min.Y {
			errs = append(errs, fmt.Errorf("goal %q: max below min", g.Name))
		}
		for _, a := range g.Assigned {
			if !names[a] {
				errs = append(errs, fmt.Errorf("goal %q: unknown assigned entity %q", g.Name, a))
			}
		}
	}
	return errors.Join(errs...)
}

// parseColor resolves a tcell color name or #rrggbb value
func parseColor(name string) (tcell.Color, bool) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}
