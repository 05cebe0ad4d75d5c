package core

// Entity is a stable world identity, 0 is reserved for "none"
type Entity uint64

// Kind distinguishes the two selectable entity classes
type Kind uint8

const (
	KindCharacter Kind = iota
	KindTreasure
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindTreasure:
		return "Treasure"
	default:
		return "Unknown"
	}
}
