package system

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/treasure-haul/core"
	"github.com/lixenwraith/treasure-haul/engine"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// ShakeSystem advances restriction effects: jitter around the origin, then restore
type ShakeSystem struct {
	world *engine.World
	cs    *engine.ComponentStore
	rng   *rand.Rand

	statActive *atomic.Int64

	enabled bool
}

// NewShakeSystem creates the shake system seeded from config
func NewShakeSystem(world *engine.World) *ShakeSystem {
	seed := world.Resources.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &ShakeSystem{
		world:      world,
		cs:         &world.Components,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		statActive: world.Resources.Status.Ints.Get("shake.active"),
	}
	s.Init()
	return s
}

func (s *ShakeSystem) Init() {
	s.enabled = true
}

func (s *ShakeSystem) Name() string {
	return "shake"
}

func (s *ShakeSystem) Priority() int {
	return parameter.PriorityShake
}

// Update jitters every shaking entity, restoring those whose duration elapsed
func (s *ShakeSystem) Update() {
	if !s.enabled {
		return
	}
	dt := s.world.Resources.Time.DeltaTime

	entities := s.cs.Shake.GetAllEntities()
	for _, e := range entities {
		sh, ok := s.cs.Shake.GetComponent(e)
		if !ok {
			continue
		}
		if sh.Elapsed >= sh.Duration {
			cancelShake(s.cs, e)
			continue
		}

		h, ok := s.cs.Handle.GetComponent(e)
		if !ok || h.Transform == nil {
			s.cs.Shake.RemoveComponent(e)
			continue
		}
		h.Transform.SetPosition(vmath.Vec3F{
			X: sh.OriginPosition.X + s.jitter(sh.Amplitude),
			Y: sh.OriginPosition.Y + s.jitter(sh.Amplitude),
			Z: sh.OriginPosition.Z,
		})

		sh.Elapsed += dt
		s.cs.Shake.SetComponent(e, sh)
	}
	s.statActive.Store(int64(s.cs.Shake.CountEntity()))
}

// jitter returns a uniform offset in [-amp, amp)
func (s *ShakeSystem) jitter(amp float64) float64 {
	return (s.rng.Float64()*2 - 1) * amp
}

// cancelShake restores captured position and color, then removes the effect
func cancelShake(cs *engine.ComponentStore, e core.Entity) {
	sh, ok := cs.Shake.GetComponent(e)
	if !ok {
		return
	}
	if h, ok := cs.Handle.GetComponent(e); ok {
		if h.Transform != nil {
			h.Transform.SetPosition(sh.OriginPosition)
		}
		if h.Material != nil {
			h.Material.SetColor(sh.OriginColor)
		}
	}
	cs.Shake.RemoveComponent(e)
}
