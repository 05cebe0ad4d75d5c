package system

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/event"
	"github.com/lixenwraith/treasure-haul/input"
	"github.com/lixenwraith/treasure-haul/navigation"
	"github.com/lixenwraith/treasure-haul/scene"
	"github.com/lixenwraith/treasure-haul/vmath"
)

const (
	testTick     = 100 * time.Millisecond
	testSpeed    = 10.0
	testDuration = 500 * time.Millisecond
)

var (
	originalColor   = tcell.ColorWhite
	restrictedColor = tcell.ColorRed
)

// fakeRaycaster resolves selectables from a fixed cell table and grounds everything else at a fixed point
type fakeRaycaster struct {
	cells  map[[2]int]core.Entity
	ground vmath.Vec3F
}

func (r *fakeRaycaster) Raycast(col, row int, mask input.LayerMask) (input.Hit, bool) {
	if mask&input.LayerSelectable != 0 {
		if e, ok := r.cells[[2]int{col, row}]; ok {
			return input.Hit{Entity: e, Layer: input.LayerSelectable}, true
		}
	}
	if mask&input.LayerGround != 0 {
		return input.Hit{Point: r.ground, Layer: input.LayerGround}, true
	}
	return input.Hit{}, false
}

// recorder captures routed events for assertions
type recorder struct {
	types  []event.EventType
	events []event.GameEvent
}

func (r *recorder) Init()                         {}
func (r *recorder) Name() string                  { return "recorder" }
func (r *recorder) Priority() int                 { return 1000 }
func (r *recorder) Update()                       {}
func (r *recorder) EventTypes() []event.EventType { return r.types }
func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	t     *testing.T
	world *engine.World
	rc    *fakeRaycaster
	time  *engine.MockTimeProvider
	sched *engine.ClockScheduler
	rec   *recorder

	carry    *CarrySystem
	shake    *ShakeSystem
	movement *MovementSystem
	sel      *SelectionSystem
	goal     *GoalSystem
	trigger  *TriggerSystem
	nav      *NavigationSystem
	hud      *HudSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := engine.NewWorld()
	w.Resources.Config.Seed = 1

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	f := &fixture{
		t:     t,
		world: w,
		rc:    &fakeRaycaster{cells: make(map[[2]int]core.Entity)},
		time:  mock,
		sched: engine.NewClockScheduler(w, engine.NewPausableClock(mock), testTick),
		rec: &recorder{types: []event.EventType{
			event.EventSelectionRejected,
			event.EventCarryBound,
			event.EventTreasureDropped,
			event.EventCarryRestricted,
			event.EventMoveIssued,
			event.EventMarkerCleared,
			event.EventGoalDelivered,
			event.EventGoalComplete,
		}},
	}

	f.carry = NewCarrySystem(w)
	f.shake = NewShakeSystem(w)
	f.movement = NewMovementSystem(w, f.rc, f.carry)
	f.sel = NewSelectionSystem(w, f.rc, f.carry, f.movement)
	f.goal = NewGoalSystem(w)
	f.trigger = NewTriggerSystem(w)
	f.nav = NewNavigationSystem(w)
	f.hud = NewHudSystem(w)

	for _, s := range []engine.System{f.sel, f.nav, f.carry, f.shake, f.movement, f.trigger, f.goal, f.hud, f.rec} {
		w.AddSystem(s)
	}
	return f
}

// character spawns a navigable character with material; cell registers it with the raycaster
func (f *fixture) character(p vmath.Vec3F, tag string, cell [2]int) core.Entity {
	node := scene.NewNode("c", p, scene.Child{Category: "Arrow"})
	return f.spawnCharacter(component.HandleComponent{
		Transform: node,
		Agent:     navigation.NewAgent(node, testSpeed, 0.1),
		Material:  scene.NewPaint(originalColor),
	}, tag, cell)
}

func (f *fixture) spawnCharacter(h component.HandleComponent, tag string, cell [2]int) core.Entity {
	e := f.world.CreateEntity()
	cs := &f.world.Components
	cs.Selectable.SetComponent(e, component.SelectableComponent{Name: "c", Kind: core.KindCharacter, Tag: tag})
	cs.Carrier.SetComponent(e, component.CarrierComponent{
		ShakeAmplitude:  0.2,
		ShakeDuration:   testDuration,
		RestrictedColor: restrictedColor,
		OriginalColor:   originalColor,
	})
	cs.Handle.SetComponent(e, h)
	f.rc.cells[cell] = e
	return e
}

func (f *fixture) treasure(p vmath.Vec3F, weight int, radius float64, cell [2]int) (core.Entity, *scene.Label) {
	e := f.world.CreateEntity()
	label := scene.NewLabel("")
	cs := &f.world.Components
	cs.Selectable.SetComponent(e, component.SelectableComponent{Name: "t", Kind: core.KindTreasure, Tag: "Gold"})
	cs.Treasure.SetComponent(e, component.TreasureComponent{Weight: weight, CarryRadius: radius})
	cs.Handle.SetComponent(e, component.HandleComponent{
		Transform: scene.NewNode("t", p, scene.Child{Category: "Arrow"}),
		Display:   label,
	})
	f.rc.cells[cell] = e
	return e, label
}

// click routes a primary click through the event queue
func (f *fixture) click(cell [2]int) {
	f.world.Emit(event.EventPointerPrimary, &event.PointerPayload{X: cell[0], Y: cell[1]})
	f.world.DispatchEvents()
}

func (f *fixture) rightClick() {
	f.world.Emit(event.EventPointerSecondary, &event.PointerPayload{})
	f.world.DispatchEvents()
}

func (f *fixture) tick(n int) {
	for range n {
		f.time.Advance(testTick)
		f.sched.Step()
	}
}

func (f *fixture) pos(e core.Entity) vmath.Vec3F {
	h, _ := f.world.Components.Handle.GetComponent(e)
	return h.Transform.Position()
}

func (f *fixture) setPos(e core.Entity, p vmath.Vec3F) {
	h, _ := f.world.Components.Handle.GetComponent(e)
	h.Transform.SetPosition(p)
}

func (f *fixture) color(e core.Entity) tcell.Color {
	h, _ := f.world.Components.Handle.GetComponent(e)
	return h.Material.Color()
}

func (f *fixture) carrying(e core.Entity) bool {
	c, _ := f.world.Components.Carrier.GetComponent(e)
	return c.IsCarrying
}

func (f *fixture) selected(e core.Entity) bool {
	s, _ := f.world.Components.Selectable.GetComponent(e)
	return s.Selected
}

// assertCount checks the carrier-count invariant against the roster
func (f *fixture) assertCount(t core.Entity, label *scene.Label, want string) {
	f.t.Helper()
	tc, _ := f.world.Components.Treasure.GetComponent(t)
	expected := 0
	if active, ok := f.sel.ActiveTreasure(); ok && active == t {
		expected = f.sel.Roster().Len() - 1
	}
	if tc.CurrentCarriers != expected {
		f.t.Errorf("CurrentCarriers = %d, want %d", tc.CurrentCarriers, expected)
	}
	if got := label.Text(); got != want {
		f.t.Errorf("display = %q, want %q", got, want)
	}
}

func approx(a, b vmath.Vec3F) bool {
	return vmath.V3FApproxEqual(a, b, 1e-9)
}
