package navigation

import (
	"github.com/lixenwraith/treasure-haul/component"
	"github.com/lixenwraith/treasure-haul/parameter"
	"github.com/lixenwraith/treasure-haul/vmath"
)

// Agent is a straight-line steering agent moving one transform on the ground plane
// Path computation is modeled as one tick of latency: PathPending stays true until the next Step
type Agent struct {
	transform component.Transform

	Speed    float64 // World units per second
	Stopping float64 // Arrival tolerance

	destination vmath.Vec3F
	hasPath     bool
	pending     bool
	remaining   float64
}

// NewAgent binds an agent to a transform; zero speed or stopping use parameter defaults
func NewAgent(t component.Transform, speed, stopping float64) *Agent {
	if speed <= 0 {
		speed = parameter.DefaultAgentSpeed
	}
	if stopping <= 0 {
		stopping = parameter.DefaultStoppingDistance
	}
	return &Agent{
		transform: t,
		Speed:     speed,
		Stopping:  stopping,
	}
}

// SetDestination requests a new path; the previous one is abandoned
func (a *Agent) SetDestination(p vmath.Vec3F) {
	a.destination = p
	a.hasPath = true
	a.pending = true
}

// PathPending reports whether the path for the last destination is still being resolved
func (a *Agent) PathPending() bool {
	return a.pending
}

// RemainingDistance is the distance left along the current path, 0 without a path
func (a *Agent) RemainingDistance() float64 {
	return a.remaining
}

// StoppingDistance is the arrival tolerance
func (a *Agent) StoppingDistance() float64 {
	return a.Stopping
}

// Step advances the agent by dt seconds
func (a *Agent) Step(dt float64) {
	if !a.hasPath {
		return
	}
	if !a.transform.Active() {
		return
	}

	pos := a.transform.Position()
	// Keep the agent's own height; destinations are ground points
	target := vmath.Vec3F{X: a.destination.X, Y: a.destination.Y, Z: pos.Z}

	if a.pending {
		a.pending = false
		a.remaining = vmath.V3FDistance(pos, target)
		return
	}

	if a.remaining <= a.Stopping {
		a.hasPath = false
		return
	}

	next := vmath.V3FMoveTowards(pos, target, a.Speed*dt)
	a.transform.SetPosition(next)
	a.remaining = vmath.V3FDistance(next, target)
	if a.remaining <= a.Stopping {
		a.hasPath = false
	}
}

// Stop cancels the current path
func (a *Agent) Stop() {
	a.hasPath = false
	a.pending = false
	a.remaining = 0
}
