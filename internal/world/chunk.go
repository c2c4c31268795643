package world

import "fmt"

// Chunk is a TilesPerChunk x TilesPerChunk block of tiles, indexed [tileX][tileY]
// with tileY 0 at the bottom.
type Chunk struct {
	tiles   [TilesPerChunk][TilesPerChunk]*Tile
	texture string // Decorative asset key, opaque to collision
	empty   bool
}

var emptyChunk = newEmptyChunk()

func newEmptyChunk() *Chunk {
	c := &Chunk{empty: true}
	for x := range c.tiles {
		for y := range c.tiles[x] {
			c.tiles[x][y] = emptyTile
		}
	}
	return c
}

// EmptyChunk returns the shared chunk whose every cell is the empty tile.
func EmptyChunk() *Chunk {
	return emptyChunk
}

// NewChunk creates a chunk from an x-major grid. Nil cells become the empty tile.
// texture may be empty when the chunk has no decoration.
func NewChunk(tiles [][]*Tile, texture string) (*Chunk, error) {
	if len(tiles) != TilesPerChunk {
		return nil, fmt.Errorf("chunk has %d columns instead of %d: %w", len(tiles), TilesPerChunk, ErrInvalidDimension)
	}

	c := &Chunk{texture: texture, empty: true}
	for x, column := range tiles {
		if len(column) != TilesPerChunk {
			return nil, fmt.Errorf("chunk column %d has %d tiles instead of %d: %w", x, len(column), TilesPerChunk, ErrInvalidDimension)
		}
		for y, tile := range column {
			if tile == nil {
				tile = emptyTile
			}
			if !tile.IsEmpty() {
				c.empty = false
			}
			c.tiles[x][y] = tile
		}
	}
	return c, nil
}

// Tile returns the tile at the given cell, or the empty tile if the cell is outside the chunk.
func (c *Chunk) Tile(tileX, tileY int) *Tile {
	if tileX < 0 || tileX >= TilesPerChunk || tileY < 0 || tileY >= TilesPerChunk {
		return emptyTile
	}
	return c.tiles[tileX][tileY]
}

// Texture returns the decorative asset key, if any.
func (c *Chunk) Texture() (string, bool) {
	return c.texture, c.texture != ""
}

// IsEmpty returns true if no cell of the chunk has collision.
func (c *Chunk) IsEmpty() bool {
	return c.empty
}
