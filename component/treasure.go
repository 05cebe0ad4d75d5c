package component

// TreasureComponent is the carry requirement of a treasure
type TreasureComponent struct {
	Weight          int     // Carriers required, >= 1
	CarryRadius     float64 // Tether radius, > 0
	CurrentCarriers int     // Mirrors roster size minus the treasure
}
