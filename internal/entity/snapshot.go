package entity

import (
	"fmt"

	"github.com/samdwyer/sonicswirl/internal/physics"
)

// SensorReading is what a renderer needs to draw one sensor.
type SensorReading struct {
	Position physics.Vector
	Distance float64
	Active   bool
}

// Snapshot is a read-only copy of the player's pose after a tick.
type Snapshot struct {
	Position    physics.Vector
	Velocity    physics.Vector
	GroundSpeed float64
	GroundAngle float64
	State       State
	Jumping     bool
	DebugMode   bool
	FacingLeft  bool
	Sensors     [4]SensorReading // Indexed by SensorA..SensorF
}

// Snapshot copies the player's current pose.
func (p *Player) Snapshot() Snapshot {
	snap := Snapshot{
		Position:    p.Position,
		Velocity:    p.velocity,
		GroundSpeed: p.groundSpeed,
		GroundAngle: p.groundAngle,
		State:       p.state,
		Jumping:     p.jumping,
		DebugMode:   p.debugMode,
		FacingLeft:  p.facingLeft,
	}
	for i, s := range p.Sensors() {
		snap.Sensors[i] = SensorReading{Position: s.Position, Distance: s.Distance(), Active: s.Active}
	}
	return snap
}

// Mode returns "debug" in free-fly, otherwise the state name.
func (s Snapshot) Mode() string {
	if s.DebugMode {
		return "debug"
	}
	return s.State.String()
}

// String formats the pose on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("%-8s pos=(%7.2f,%7.2f) vel=(%7.2f,%7.2f) gsp=%7.2f angle=%6.1f",
		s.Mode(), s.Position.X, s.Position.Y, s.Velocity.X, s.Velocity.Y, s.GroundSpeed, s.GroundAngle)
}
