package world

// TileMap is an immutable level: columns of chunks indexed [chunkX][chunkY].
// Columns may differ in height, so a level can be taller in some places than others.
type TileMap struct {
	columns [][]*Chunk
}

// NewTileMap creates a tile map from x-major chunk columns.
// Nil chunks read as the empty chunk.
func NewTileMap(columns [][]*Chunk) *TileMap {
	cols := make([][]*Chunk, len(columns))
	for x, column := range columns {
		cols[x] = make([]*Chunk, len(column))
		for y, chunk := range column {
			if chunk == nil {
				chunk = emptyChunk
			}
			cols[x][y] = chunk
		}
	}
	return &TileMap{columns: cols}
}

// GetChunk returns the chunk at the given chunk coordinates,
// or the empty chunk if the coordinates are out of range.
func (m *TileMap) GetChunk(chunkX, chunkY int) *Chunk {
	if chunkX < 0 || chunkX >= len(m.columns) || chunkY < 0 || chunkY >= len(m.columns[chunkX]) {
		return emptyChunk
	}
	return m.columns[chunkX][chunkY]
}

// GetTile returns the tile at the given chunk and tile coordinates.
// It never fails: anything out of range resolves to the empty tile.
func (m *TileMap) GetTile(chunkX, chunkY, tileX, tileY int) *Tile {
	if tileX < 0 || tileY < 0 {
		return emptyTile
	}
	chunk := m.GetChunk(chunkX, chunkY)
	if chunk.IsEmpty() {
		return emptyTile
	}
	return chunk.Tile(tileX, tileY)
}

// Columns returns the number of chunk columns.
func (m *TileMap) Columns() int {
	return len(m.columns)
}

// ColumnHeight returns the number of chunks in column chunkX, or 0 if it does not exist.
func (m *TileMap) ColumnHeight(chunkX int) int {
	if chunkX < 0 || chunkX >= len(m.columns) {
		return 0
	}
	return len(m.columns[chunkX])
}

// PixelWidth returns the width of the level in pixels.
func (m *TileMap) PixelWidth() int {
	return len(m.columns) * ChunkLength
}
