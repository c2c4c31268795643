package physics

import (
	"github.com/samdwyer/sonicswirl/internal/world"
)

const (
	// FloorOutOfBounds is the distance a floor probe reports outside the level.
	// It is negative enough to fail every floor acceptance check.
	FloorOutOfBounds = -50
	// WallOutOfBounds is the distance a wall probe reports outside the level.
	// Wall hits are only accepted when negative, so this never collides.
	WallOutOfBounds = 50
)

// Direction is the way a probe travels looking for a surface.
type Direction int

const (
	// Down probes for a floor.
	Down Direction = iota
	// Left probes for a wall on the left.
	Left
	// Right probes for a wall on the right.
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Sign returns -1 for Left and Down, +1 for Right.
func (d Direction) Sign() int {
	if d == Right {
		return 1
	}
	return -1
}

// Probe is the outcome of a single sensor query.
type Probe struct {
	Tile     *world.Tile // Tile the surface was found in
	Distance float64     // Signed distance to the surface
}

// ProbeFloor looks for the top of the floor below or around pos.
// The distance is the surface height minus pos.Y: positive when the surface is
// above the sensor (it has sunk into the ground), negative when it is below.
func ProbeFloor(level *world.TileMap, pos Vector) Probe {
	if pos.X < 0 || pos.Y < 0 {
		return Probe{Tile: world.EmptyTile(), Distance: FloorOutOfBounds}
	}

	px, py := Round(pos.X), Round(pos.Y)
	chunkX, tileX := locate(px)
	chunkY, tileY := locate(py)
	column := FloorMod(px, world.TileLength)

	height := floorHeight(level.GetTile(chunkX, chunkY, tileX, tileY), column)
	distance := float64(chunkY*world.ChunkLength+tileY*world.TileLength+height) - pos.Y

	switch height {
	case world.TileLength:
		// Regression: the column is full, so the surface may continue in the tile above.
		upChunk, upTile := step(chunkY, tileY, 1)
		if above := floorHeight(level.GetTile(chunkX, upChunk, tileX, upTile), column); above > 0 {
			chunkY, tileY = upChunk, upTile
			distance += float64(above)
		}
	case 0:
		// Extension: nothing here, so the surface may be in the tile below.
		chunkY, tileY = step(chunkY, tileY, -1)
		below := floorHeight(level.GetTile(chunkX, chunkY, tileX, tileY), column)
		distance -= float64(world.TileLength - below)
	}

	return Probe{Tile: level.GetTile(chunkX, chunkY, tileX, tileY), Distance: distance}
}

// ProbeWall looks for the nearest wall face from pos in the facing direction
// (Left, or Right for anything else). The distance is measured along the facing
// direction: negative when the sensor is inside the wall.
func ProbeWall(level *world.TileMap, pos Vector, facing Direction) Probe {
	if pos.X < 0 || pos.Y < 0 {
		return Probe{Tile: world.EmptyTile(), Distance: WallOutOfBounds}
	}
	if facing != Left {
		facing = Right
	}

	px, py := Round(pos.X), Round(pos.Y)
	chunkX, tileX := locate(px)
	chunkY, tileY := locate(py)
	row := world.TileLength - 1 - FloorMod(py, world.TileLength)
	s := facing.Sign()

	width := wallWidth(level.GetTile(chunkX, chunkY, tileX, tileY), row, facing)
	tileLeft := float64(chunkX*world.ChunkLength + tileX*world.TileLength)

	var distance float64
	if facing == Right {
		distance = tileLeft + float64(world.TileLength-width) - pos.X
	} else {
		distance = pos.X - (tileLeft + float64(width))
	}

	switch width {
	case world.TileLength:
		// Regression: the row is full, so the face may be further back.
		backChunk, backTile := step(chunkX, tileX, -s)
		if behind := wallWidth(level.GetTile(backChunk, chunkY, backTile, tileY), row, facing); behind > 0 {
			chunkX, tileX = backChunk, backTile
			distance -= float64(behind)
		}
	case 0:
		// Extension: nothing here, so the face may be in the next tile along.
		chunkX, tileX = step(chunkX, tileX, s)
		ahead := wallWidth(level.GetTile(chunkX, chunkY, tileX, tileY), row, facing)
		distance += float64(world.TileLength - ahead)
	}

	return Probe{Tile: level.GetTile(chunkX, chunkY, tileX, tileY), Distance: distance}
}

// locate splits a pixel coordinate into chunk and tile indices.
func locate(p int) (chunk, tile int) {
	inChunk := FloorMod(p, world.ChunkLength)
	return (p - inChunk) / world.ChunkLength, inChunk / world.TileLength
}

// step moves one tile along an axis, wrapping into the neighbouring chunk.
func step(chunk, tile, delta int) (int, int) {
	tile += delta
	switch {
	case tile < 0:
		return chunk - 1, world.TilesPerChunk - 1
	case tile >= world.TilesPerChunk:
		return chunk + 1, 0
	default:
		return chunk, tile
	}
}

// floorHeight is the solid height a downward probe sees in a column.
// A vertically flipped tile hangs from its top edge, so any solid there reaches the top.
func floorHeight(t *world.Tile, column int) int {
	h := t.Height(column)
	if h > 0 && t.FlippedVertically() {
		return world.TileLength
	}
	return h
}

// wallWidth is the solid width a horizontal probe sees in a row, measured back
// from the edge the probe travels toward. Widths normally hug the right edge;
// when they hug the edge nearest the probe, the face is flush with that edge.
func wallWidth(t *world.Tile, row int, facing Direction) int {
	w := t.Width(row)
	if w == 0 {
		return 0
	}
	hugsRight := !t.FlippedHorizontally()
	if (facing == Right) == hugsRight {
		return w
	}
	return world.TileLength
}
