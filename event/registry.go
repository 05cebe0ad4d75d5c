package event

var typeNames = [eventTypeCount]string{
	EventTick:                "Tick",
	EventPointerPrimary:      "PointerPrimary",
	EventPointerSecondary:    "PointerSecondary",
	EventMoveRequest:         "MoveRequest",
	EventSelectionChanged:    "SelectionChanged",
	EventSelectionRejected:   "SelectionRejected",
	EventCarrierCountChanged: "CarrierCountChanged",
	EventCarryBound:          "CarryBound",
	EventTreasureDropped:     "TreasureDropped",
	EventCarryRestricted:     "CarryRestricted",
	EventMoveIssued:          "MoveIssued",
	EventMarkerCleared:       "MarkerCleared",
	EventGoalEnter:           "GoalEnter",
	EventGoalExit:            "GoalExit",
	EventGoalDelivered:       "GoalDelivered",
	EventGoalComplete:        "GoalComplete",
	EventSoundRequest:        "SoundRequest",
}

// String returns the registered event name
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}
