package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundSelect     SoundType = iota // Entity selected
	SoundReject                      // Invalid selection click
	SoundRestricted                  // Release below weight, carriers shaken
	SoundDrop                        // Treasure dropped at carrier centroid
	SoundDelivered                   // Entity entered its goal
	SoundComplete                    // Goal fully delivered
	SoundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundSelect:
		return "select"
	case SoundReject:
		return "reject"
	case SoundRestricted:
		return "restricted"
	case SoundDrop:
		return "drop"
	case SoundDelivered:
		return "delivered"
	case SoundComplete:
		return "complete"
	default:
		return "unknown"
	}
}
