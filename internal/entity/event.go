package entity

import (
	"github.com/samdwyer/sonicswirl/internal/physics"
)

// EventKind identifies a player state change worth reporting.
type EventKind int

const (
	// EventJumped is emitted when the player leaves the ground by jumping.
	EventJumped EventKind = iota
	// EventLanded is emitted when an airborne player touches a floor.
	EventLanded
	// EventDetached is emitted when a grounded player loses the floor.
	EventDetached
	// EventWallHit is emitted when a wall sensor pushes the player out of a wall.
	EventWallHit
	// EventRespawned is emitted when the player falls out of the level.
	EventRespawned
	// EventDebugToggled is emitted when free-fly is switched on or off.
	EventDebugToggled
)

// String returns the event name used in traces and reports.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	case EventDetached:
		return "detached"
	case EventWallHit:
		return "wall_hit"
	case EventRespawned:
		return "respawned"
	case EventDebugToggled:
		return "debug_toggled"
	default:
		return "unknown"
	}
}

// Event records a state change and the pose at the moment it happened.
type Event struct {
	Kind        EventKind
	Position    physics.Vector
	GroundSpeed float64
	GroundAngle float64
}
