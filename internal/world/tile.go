// Package world provides the heightmap collision model: tiles, chunks and the tile map.
package world

import (
	"errors"
	"fmt"
)

const (
	// TileLength is the edge length of a tile in pixels, and the number of
	// height columns and width rows each tile carries.
	TileLength = 16
	// ChunkLength is the edge length of a chunk in pixels.
	ChunkLength = 96
	// TilesPerChunk is the number of tiles along each edge of a chunk.
	TilesPerChunk = ChunkLength / TileLength

	// FlaggedAngle marks a tile whose angle snaps to the nearest 90 degrees on contact.
	FlaggedAngle = 360
)

var (
	// ErrInvalidDimension is returned when a tile array or chunk grid has the wrong size.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidHeight is returned when a height or width value lies outside 0..TileLength.
	ErrInvalidHeight = errors.New("invalid height")
)

// Solidity describes which edges of a tile are collidable.
type Solidity int

const (
	// SolidTop collides only with things landing on the tile.
	SolidTop Solidity = iota
	// SolidBottom collides only with things hitting the tile from below.
	SolidBottom
	// SolidLeft collides only on the tile's left edge.
	SolidLeft
	// SolidRight collides only on the tile's right edge.
	SolidRight
	// SolidAll collides on every edge.
	SolidAll
)

// String returns the solidity name.
func (s Solidity) String() string {
	switch s {
	case SolidTop:
		return "top"
	case SolidBottom:
		return "bottom"
	case SolidLeft:
		return "left"
	case SolidRight:
		return "right"
	case SolidAll:
		return "all"
	default:
		return "unknown"
	}
}

// TileDef describes a tile before validation.
type TileDef struct {
	Heights             []int    // Solid height per column, measured from the bottom edge
	Widths              []int    // Solid width per row, row 0 being the top of the tile
	Angle               float64  // Surface angle in degrees (FlaggedAngle to snap)
	Solidity            Solidity // Collidable edges
	FlippedHorizontally bool     // Widths measured from the opposite edge
	FlippedVertically   bool     // Heights measured from the top edge
}

// Tile is an immutable collision profile. Many chunk cells share one *Tile;
// pointer identity is meaningful when comparing what two sensors found.
type Tile struct {
	heights             [TileLength]uint8
	widths              [TileLength]uint8
	angle               float64
	solidity            Solidity
	flippedHorizontally bool
	flippedVertically   bool
	empty               bool
}

var emptyTile = &Tile{empty: true}

// EmptyTile returns the shared zero-collision tile.
func EmptyTile() *Tile {
	return emptyTile
}

// NewTile validates def and copies its arrays into a new tile.
func NewTile(def TileDef) (*Tile, error) {
	t := &Tile{
		angle:               def.Angle,
		solidity:            def.Solidity,
		flippedHorizontally: def.FlippedHorizontally,
		flippedVertically:   def.FlippedVertically,
	}
	if err := fillColumn(&t.heights, def.Heights, "heights"); err != nil {
		return nil, err
	}
	if err := fillColumn(&t.widths, def.Widths, "widths"); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTile is like NewTile but panics on error.
// Use this for fixture data that is known to be valid.
func MustNewTile(def TileDef) *Tile {
	t, err := NewTile(def)
	if err != nil {
		panic(err)
	}
	return t
}

func fillColumn(dst *[TileLength]uint8, src []int, name string) error {
	if len(src) != TileLength {
		return fmt.Errorf("%s length is %d instead of %d: %w", name, len(src), TileLength, ErrInvalidDimension)
	}
	for i, v := range src {
		if v < 0 || v > TileLength {
			return fmt.Errorf("%s[%d] = %d: %w", name, i, v, ErrInvalidHeight)
		}
		dst[i] = uint8(v)
	}
	return nil
}

// Height returns the solid height of column i, or 0 for the empty tile
// and for any index outside the tile.
func (t *Tile) Height(i int) int {
	if t.empty || i < 0 || i >= TileLength {
		return 0
	}
	return int(t.heights[i])
}

// Width returns the solid width of row i (row 0 is the top), or 0 for the
// empty tile and for any index outside the tile.
func (t *Tile) Width(i int) int {
	if t.empty || i < 0 || i >= TileLength {
		return 0
	}
	return int(t.widths[i])
}

// Angle returns the surface angle in degrees.
func (t *Tile) Angle() float64 { return t.angle }

// Flagged reports whether the tile carries the snap-to-90 sentinel angle.
func (t *Tile) Flagged() bool { return t.angle == FlaggedAngle }

// Solidity returns which edges are collidable.
func (t *Tile) Solidity() Solidity { return t.solidity }

// FlippedHorizontally reports whether widths are measured from the opposite edge.
func (t *Tile) FlippedHorizontally() bool { return t.flippedHorizontally }

// FlippedVertically reports whether heights hang from the top edge.
func (t *Tile) FlippedVertically() bool { return t.flippedVertically }

// IsEmpty returns true for the zero-collision tile.
func (t *Tile) IsEmpty() bool { return t.empty }
