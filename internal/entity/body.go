// Package entity provides the player and the hitbox it moves with.
package entity

import (
	"github.com/samdwyer/sonicswirl/internal/physics"
)

// Body is a hitbox centred on Position.
type Body struct {
	Position     physics.Vector
	WidthRadius  float64
	HeightRadius float64
}

// LeftEdgeX returns the x of the hitbox's left edge.
func (b *Body) LeftEdgeX() float64 { return b.Position.X - b.WidthRadius }

// RightEdgeX returns the x of the hitbox's right edge.
func (b *Body) RightEdgeX() float64 { return b.Position.X + b.WidthRadius }

// TopEdgeY returns the y of the hitbox's top edge.
func (b *Body) TopEdgeY() float64 { return b.Position.Y + b.HeightRadius }

// BottomEdgeY returns the y of the hitbox's bottom edge.
func (b *Body) BottomEdgeY() float64 { return b.Position.Y - b.HeightRadius }

// Move translates the body by delta.
func (b *Body) Move(delta physics.Vector) {
	b.Position = b.Position.Add(delta)
}

// EnforceBoundaries stops the body leaving the left edge of the level and
// reports whether it has fallen to or below floorY.
func (b *Body) EnforceBoundaries(floorY float64) (fell bool) {
	if b.Position.X < 0 {
		b.Position.X = 0
	}
	return b.Position.Y <= floorY
}
