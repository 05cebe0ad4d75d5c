package parameter

// System update order, lower runs first
const (
	PrioritySelection  = 10 // Event-driven; Update is a no-op
	PriorityNavigation = 20 // Agents step before anything reads positions
	PriorityCarry      = 30 // Treasure follows carriers after they moved
	PriorityShake      = 40 // Jitter applied on top of settled positions
	PriorityMovement   = 50 // Arrival check after positions settled
	PriorityTrigger    = 60 // Region membership from final positions
	PriorityGoal       = 70
	PriorityHud        = 80 // Event-driven status gauges
	PriorityAudio      = 90
	PriorityDiag       = 100
)
