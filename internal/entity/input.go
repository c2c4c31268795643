package entity

// Input is the controller state for one tick.
type Input struct {
	Left, Right     bool
	Up, Down        bool // Only used by debug free-fly
	JumpHeld        bool
	JumpJustPressed bool
	DebugToggle     bool // Just pressed this tick
	DebugRotate     bool // Just pressed this tick
}

// Horizontal returns -1 for left, 1 for right, and 0 when neither or both are held.
func (in Input) Horizontal() int {
	switch {
	case in.Right && !in.Left:
		return 1
	case in.Left && !in.Right:
		return -1
	default:
		return 0
	}
}
