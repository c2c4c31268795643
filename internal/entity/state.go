package entity

// State is whether the player is on the ground or in the air.
type State int

const (
	// Grounded moves along the surface using ground speed and angle.
	Grounded State = iota
	// Airborne moves freely under gravity.
	Airborne
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	default:
		return "unknown"
	}
}
