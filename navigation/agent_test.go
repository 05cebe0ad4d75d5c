package navigation_test

import (
	"testing"

	"github.com/lixenwraith/treasure-haul/navigation"
	"github.com/lixenwraith/treasure-haul/scene"
	"github.com/lixenwraith/treasure-haul/vmath"
)

func TestAgentPendingThenArrives(t *testing.T) {
	node := scene.NewNode("a", vmath.Vec3F{})
	agent := navigation.NewAgent(node, 10, 0.1)

	agent.SetDestination(vmath.Vec3F{X: 3})
	if !agent.PathPending() {
		t.Fatal("Expected path pending right after SetDestination")
	}

	agent.Step(0.1) // resolves path, no movement
	if agent.PathPending() {
		t.Error("Expected path resolved after first step")
	}
	if agent.RemainingDistance() != 3 {
		t.Errorf("Expected remaining 3, got %f", agent.RemainingDistance())
	}
	if node.Position() != (vmath.Vec3F{}) {
		t.Errorf("Expected no movement on resolve tick, got %+v", node.Position())
	}

	agent.Step(0.1) // 1 unit
	if got := node.Position().X; got != 1 {
		t.Errorf("Expected x=1, got %f", got)
	}

	for i := 0; i < 5; i++ {
		agent.Step(0.1)
	}
	if node.Position() != (vmath.Vec3F{X: 3}) {
		t.Errorf("Expected arrival at (3,0,0), got %+v", node.Position())
	}
	if agent.RemainingDistance() > agent.StoppingDistance() {
		t.Errorf("Expected remaining within stopping distance, got %f", agent.RemainingDistance())
	}
}

func TestAgentKeepsHeight(t *testing.T) {
	node := scene.NewNode("a", vmath.Vec3F{Z: 2})
	agent := navigation.NewAgent(node, 100, 0.1)

	agent.SetDestination(vmath.Vec3F{X: 1, Y: 1})
	agent.Step(0.1)
	agent.Step(0.1)

	if got := node.Position(); got != (vmath.Vec3F{X: 1, Y: 1, Z: 2}) {
		t.Errorf("Expected (1,1,2), got %+v", got)
	}
}

func TestAgentInactiveDoesNotMove(t *testing.T) {
	node := scene.NewNode("a", vmath.Vec3F{})
	node.SetActive(false)
	agent := navigation.NewAgent(node, 10, 0.1)

	agent.SetDestination(vmath.Vec3F{X: 5})
	agent.Step(0.5)
	agent.Step(0.5)

	if node.Position() != (vmath.Vec3F{}) {
		t.Errorf("Expected inactive node to stay put, got %+v", node.Position())
	}
}

func TestAgentDefaults(t *testing.T) {
	agent := navigation.NewAgent(scene.NewNode("a", vmath.Vec3F{}), 0, 0)
	if agent.Speed <= 0 || agent.StoppingDistance() <= 0 {
		t.Errorf("Expected defaults applied, got speed=%f stopping=%f", agent.Speed, agent.StoppingDistance())
	}
	if agent.PathPending() {
		t.Error("Expected no pending path on a fresh agent")
	}
}
