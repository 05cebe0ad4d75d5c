package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventTick is the reserved zero type, never pushed
	EventTick EventType = iota

	// === Input Event ===

	// EventPointerPrimary is a primary (left) click at a screen cell
	// Trigger: Input bridge | Consumer: SelectionSystem | Payload: *PointerPayload
	EventPointerPrimary

	// EventPointerSecondary is a secondary (right) click
	// Trigger: Input bridge | Consumer: SelectionSystem | Payload: *PointerPayload
	EventPointerSecondary

	// EventMoveRequest is a primary click that resolved to no selectable
	// Trigger: SelectionSystem | Consumer: MovementSystem | Payload: *PointerPayload
	EventMoveRequest

	// === Selection Event ===

	// EventSelectionChanged signals roster mutation
	// Trigger: SelectionSystem | Consumer: HudSystem | Payload: *SelectionPayload
	EventSelectionChanged

	// EventSelectionRejected reports an InvalidSelection no-op
	// Trigger: SelectionSystem | Consumer: AudioSystem, status | Payload: *FaultPayload
	EventSelectionRejected

	// EventCarrierCountChanged reports the published carrier count of a treasure
	// Trigger: SelectionSystem | Consumer: HudSystem | Payload: *CarrierCountPayload
	EventCarrierCountChanged

	// === Carry Event ===

	// EventCarryBound signals a treasure reached its weight threshold
	// Trigger: CarrySystem | Consumer: status, AudioSystem | Payload: *CarryPayload
	EventCarryBound

	// EventTreasureDropped signals a successful drop at the carrier centroid
	// Trigger: CarrySystem | Consumer: AudioSystem, status | Payload: *DropPayload
	EventTreasureDropped

	// EventCarryRestricted signals a carrier was restricted after an insufficient release
	// Trigger: CarrySystem | Consumer: AudioSystem, status | Payload: *RestrictPayload
	EventCarryRestricted

	// === Movement Event ===

	// EventMoveIssued signals a move order was dispatched to agents
	// Trigger: MovementSystem | Consumer: status | Payload: *MovePayload
	EventMoveIssued

	// EventMarkerCleared signals the destination marker was destroyed after arrival
	// Trigger: MovementSystem | Consumer: status | Payload: nil
	EventMarkerCleared

	// === Goal Event ===

	// EventGoalEnter is a trigger volume entry
	// Trigger: TriggerSystem | Consumer: GoalSystem | Payload: *GoalTriggerPayload
	EventGoalEnter

	// EventGoalExit is a trigger volume exit
	// Trigger: TriggerSystem | Consumer: GoalSystem | Payload: *GoalTriggerPayload
	EventGoalExit

	// EventGoalDelivered signals an assigned entity joined the membership set
	// Trigger: GoalSystem | Consumer: AudioSystem, MovementSystem | Payload: *GoalTriggerPayload
	EventGoalDelivered

	// EventGoalComplete signals membership reached assignment size
	// Trigger: GoalSystem | Consumer: AudioSystem, status | Payload: *GoalTriggerPayload
	EventGoalComplete

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback | Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	eventTypeCount
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
