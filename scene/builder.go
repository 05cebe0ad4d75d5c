package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/navigation"
	"github.com/lixenwraith/treasure-haul/parameter"
)

// Default presentation colors for entries that omit them
var (
	DefaultCharacterColor  = tcell.ColorWhite
	DefaultRestrictedColor = tcell.ColorRed
	DefaultTreasureColor   = tcell.ColorGold
)

// Built indexes the entities created from a scene
type Built struct {
	Named      map[string]core.Entity
	Characters []core.Entity
	Treasures  []core.Entity
	Goals      []core.Entity
}

// Build creates every scene entity in w
// Must run before systems that read the initial world state are constructed
func Build(w *engine.World, f *File) (*Built, error) {
	b := &Built{Named: make(map[string]core.Entity)}

	for _, c := range f.Characters {
		if _, dup := b.Named[c.Name]; dup {
			return nil, fmt.Errorf("character %q: duplicate name", c.Name)
		}
		e := buildCharacter(w, c)
		b.Named[c.Name] = e
		b.Characters = append(b.Characters, e)
	}

	for _, t := range f.Treasures {
		if _, dup := b.Named[t.Name]; dup {
			return nil, fmt.Errorf("treasure %q: duplicate name", t.Name)
		}
		e := buildTreasure(w, t)
		b.Named[t.Name] = e
		b.Treasures = append(b.Treasures, e)
	}

	for _, g := range f.Goals {
		assigned := make([]core.Entity, 0, len(g.Assigned))
		for _, name := range g.Assigned {
			e, ok := b.Named[name]
			if !ok {
				return nil, fmt.Errorf("goal %q: unknown assigned entity %q", g.Name, name)
			}
			assigned = append(assigned, e)
		}
		b.Goals = append(b.Goals, buildGoal(w, g, assigned))
	}

	return b, nil
}

func buildCharacter(w *engine.World, c CharacterSpec) core.Entity {
	color := colorOr(c.Color, DefaultCharacterColor)
	restricted := colorOr(c.RestrictedColor, DefaultRestrictedColor)

	amplitude := c.ShakeAmplitude
	if amplitude <= 0 {
		amplitude = parameter.DefaultShakeAmplitude
	}
	duration := c.ShakeDuration()
	if duration <= 0 {
		duration = parameter.DefaultShakeDuration
	}

	node := NewNode(c.Name, c.Position.World(), Child{Category: parameter.IndicatorTag})

	e := w.CreateEntity()
	w.Components.Selectable.SetComponent(e, component.SelectableComponent{
		Name: c.Name,
		Kind: core.KindCharacter,
		Tag:  c.Tag,
	})
	w.Components.Carrier.SetComponent(e, component.CarrierComponent{
		ShakeAmplitude:  amplitude,
		ShakeDuration:   duration,
		RestrictedColor: restricted,
		OriginalColor:   color,
	})
	w.Components.Handle.SetComponent(e, component.HandleComponent{
		Transform: node,
		Agent:     navigation.NewAgent(node, c.Speed, c.StoppingDistance),
		Material:  NewPaint(color),
	})
	return e
}

func buildTreasure(w *engine.World, t TreasureSpec) core.Entity {
	weight := t.Weight
	if weight < 1 {
		weight = parameter.DefaultTreasureWeight
	}
	radius := t.CarryRadius
	if radius <= 0 {
		radius = parameter.DefaultCarryRadius
	}

	e := w.CreateEntity()
	w.Components.Selectable.SetComponent(e, component.SelectableComponent{
		Name: t.Name,
		Kind: core.KindTreasure,
		Tag:  t.Tag,
	})
	w.Components.Treasure.SetComponent(e, component.TreasureComponent{
		Weight:      weight,
		CarryRadius: radius,
	})
	w.Components.Handle.SetComponent(e, component.HandleComponent{
		Transform: NewNode(t.Name, t.Position.World(), Child{Category: parameter.IndicatorTag}),
		Material:  NewPaint(colorOr(t.Color, DefaultTreasureColor)),
		Display:   NewLabel(fmt.Sprintf(parameter.CountFormat, 0, weight)),
	})
	return e
}

func buildGoal(w *engine.World, g GoalSpec, assigned []core.Entity) core.Entity {
	e := w.CreateEntity()
	w.Components.Goal.SetComponent(e, component.GoalComponent{
		Name:       g.Name,
		AllowedTag: g.AllowedTag,
		Assigned:   assigned,
		Display:    NewLabel(fmt.Sprintf(parameter.CountFormat, 0, len(assigned))),
	})
	w.Components.Volume.SetComponent(e, component.VolumeComponent{
		Min: g.Min.World(),
		Max: g.Max.World(),
	})
	return e
}

func colorOr(name string, fallback tcell.Color) tcell.Color {
	if c, ok := parseColor(name); ok {
		return c
	}
	return fallback
}
