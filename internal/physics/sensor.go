package physics

import (
	"github.com/samdwyer/sonicswirl/internal/world"
)

// Sensor is a point probe owned by an entity. It remembers the result of its
// last probe so the renderer can draw it.
type Sensor struct {
	Position Vector
	Active   bool
	Facing   Direction

	tile     *world.Tile
	distance float64
}

// NewSensor creates an active sensor probing in the given direction.
func NewSensor(facing Direction) *Sensor {
	return &Sensor{
		Active: true,
		Facing: facing,
		tile:   world.EmptyTile(),
	}
}

// SetPosition moves the sensor to (x, y).
func (s *Sensor) SetPosition(x, y float64) {
	s.Position = Vector{X: x, Y: y}
}

// FloorProcess probes downward from the sensor position and records the result.
func (s *Sensor) FloorProcess(level *world.TileMap) Probe {
	return s.record(ProbeFloor(level, s.Position))
}

// WallProcess probes sideways in the sensor's facing direction and records the result.
func (s *Sensor) WallProcess(level *world.TileMap) Probe {
	return s.record(ProbeWall(level, s.Position, s.Facing))
}

// Process runs the probe matching the sensor's facing.
func (s *Sensor) Process(level *world.TileMap) Probe {
	if s.Facing == Down {
		return s.FloorProcess(level)
	}
	return s.WallProcess(level)
}

// Distance returns the signed distance found by the last probe.
func (s *Sensor) Distance() float64 { return s.distance }

// Tile returns the tile found by the last probe.
func (s *Sensor) Tile() *world.Tile { return s.tile }

// Reset forgets the last probe result.
func (s *Sensor) Reset() {
	s.tile = world.EmptyTile()
	s.distance = 0
}

func (s *Sensor) record(p Probe) Probe {
	s.tile = p.Tile
	s.distance = p.Distance
	return p
}
