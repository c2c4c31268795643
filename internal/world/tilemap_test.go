package world

import (
	"context"
	"errors"
	"testing"
)

func fullTile() *Tile {
	return MustNewTile(TileDef{Heights: profile(16), Widths: profile(16), Solidity: SolidAll})
}

func TestNewChunkValidation(t *testing.T) {
	f := fullTile()

	if _, err := NewChunk(make([][]*Tile, 5), ""); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewChunk(5 columns) error = %v, want ErrInvalidDimension", err)
	}

	grid := fillGrid(f)
	grid[2] = grid[2][:4]
	if _, err := NewChunk(grid, ""); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewChunk(short column) error = %v, want ErrInvalidDimension", err)
	}
}

func TestNewChunkNilCells(t *testing.T) {
	c, err := NewChunk(make([][]*Tile, TilesPerChunk), "")
	if err == nil {
		t.Fatalf("NewChunk(nil columns) error = nil, want ErrInvalidDimension")
	}

	grid := make([][]*Tile, TilesPerChunk)
	for x := range grid {
		grid[x] = make([]*Tile, TilesPerChunk)
	}
	c, err = NewChunk(grid, "")
	if err != nil {
		t.Fatalf("NewChunk() error = %v", err)
	}
	if !c.IsEmpty() {
		t.Error("chunk of nil cells IsEmpty() = false, want true")
	}
	if c.Tile(0, 0) != EmptyTile() {
		t.Error("nil cell did not become the empty tile")
	}
	if _, ok := c.Texture(); ok {
		t.Error("Texture() ok = true for a chunk without texture")
	}

	grid[3][4] = fullTile()
	c, err = NewChunk(grid, "sprites/x.png")
	if err != nil {
		t.Fatalf("NewChunk() error = %v", err)
	}
	if c.IsEmpty() {
		t.Error("chunk with one solid tile IsEmpty() = true, want false")
	}
	if tex, ok := c.Texture(); !ok || tex != "sprites/x.png" {
		t.Errorf("Texture() = %q, %v, want sprites/x.png, true", tex, ok)
	}
}

func TestGetTileOutOfRange(t *testing.T) {
	f := fullTile()
	full, err := NewChunk(fillGrid(f), "")
	if err != nil {
		t.Fatalf("NewChunk() error = %v", err)
	}
	m := NewTileMap([][]*Chunk{
		{full},
		{full, nil, full},
		{},
	})

	tests := []struct {
		name           string
		cx, cy, tx, ty int
		want           *Tile
	}{
		{"inside", 0, 0, 0, 0, f},
		{"inside far corner", 1, 2, 5, 5, f},
		{"negative tile x", 0, 0, -1, 0, EmptyTile()},
		{"negative tile y", 0, 0, 0, -1, EmptyTile()},
		{"tile beyond chunk", 0, 0, TilesPerChunk, 0, EmptyTile()},
		{"negative chunk x", -1, 0, 0, 0, EmptyTile()},
		{"negative chunk y", 0, -3, 0, 0, EmptyTile()},
		{"chunk x beyond map", 3, 0, 0, 0, EmptyTile()},
		{"sparse gap", 0, 1, 0, 0, EmptyTile()},
		{"nil chunk", 1, 1, 0, 0, EmptyTile()},
		{"empty column", 2, 0, 0, 0, EmptyTile()},
		{"huge", 1 << 30, 1 << 30, 1 << 30, 1 << 30, EmptyTile()},
		{"very negative", -(1 << 30), -(1 << 30), -(1 << 30), -(1 << 30), EmptyTile()},
	}

	for _, tt := range tests {
		if got := m.GetTile(tt.cx, tt.cy, tt.tx, tt.ty); got != tt.want {
			t.Errorf("%s: GetTile(%d, %d, %d, %d) = %p, want %p", tt.name, tt.cx, tt.cy, tt.tx, tt.ty, got, tt.want)
		}
	}
}

func TestGetChunkOutOfRange(t *testing.T) {
	m := NewTileMap([][]*Chunk{{EmptyChunk()}})
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-100, -100}} {
		if got := m.GetChunk(c[0], c[1]); got != EmptyChunk() {
			t.Errorf("GetChunk(%d, %d) = %p, want EmptyChunk()", c[0], c[1], got)
		}
	}
	if got := m.ColumnHeight(-1); got != 0 {
		t.Errorf("ColumnHeight(-1) = %d, want 0", got)
	}
}

func TestBuildTestLevel(t *testing.T) {
	level, err := BuildTestLevel(context.Background())
	if err != nil {
		t.Fatalf("BuildTestLevel() error = %v", err)
	}

	if level.Columns() != 26 {
		t.Errorf("Columns() = %d, want 26", level.Columns())
	}
	if level.PixelWidth() != 26*ChunkLength {
		t.Errorf("PixelWidth() = %d, want %d", level.PixelWidth(), 26*ChunkLength)
	}
	if level.ColumnHeight(13) != 6 {
		t.Errorf("ColumnHeight(13) = %d, want 6", level.ColumnHeight(13))
	}
	if level.GetChunk(0, 0).IsEmpty() {
		t.Error("starting chunk is empty")
	}
	if !level.GetChunk(4, 0).IsEmpty() {
		t.Error("pit chunk at column 4 is not empty")
	}

	// The start column is a ramp: the bottom-left tile is a 45 degree slope.
	start := level.GetTile(0, 0, 0, 0)
	if start.Angle() != 45 {
		t.Errorf("GetTile(0,0,0,0).Angle() = %v, want 45", start.Angle())
	}
	if start.Height(0) != 1 || start.Height(15) != 16 {
		t.Errorf("slope heights = %d..%d, want 1..16", start.Height(0), start.Height(15))
	}
}

func TestNewPalette(t *testing.T) {
	p, err := NewPalette()
	if err != nil {
		t.Fatalf("NewPalette() error = %v", err)
	}
	if !p.RvSlope.FlippedHorizontally() {
		t.Error("reverse slope is not flipped horizontally")
	}
	if p.Half.Height(0) != 8 {
		t.Errorf("Half.Height(0) = %d, want 8", p.Half.Height(0))
	}
	// Width rows run top-down: the top half of a half tile is empty.
	if p.Half.Width(0) != 0 || p.Half.Width(15) != 16 {
		t.Errorf("Half widths top/bottom = %d/%d, want 0/16", p.Half.Width(0), p.Half.Width(15))
	}
}
