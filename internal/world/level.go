package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/sonicswirl/internal/telemetry"
)

const (
	// StartX and StartY are the test level's spawn point in pixels.
	StartX = 50
	StartY = 200
)

// Height and width profiles used by the test level.
var (
	fullProfile    = []int{16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16}
	slopeProfile   = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	rvSlopeProfile = []int{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	halfHeights    = []int{8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8}
	halfWidths     = []int{0, 0, 0, 0, 0, 0, 0, 0, 16, 16, 16, 16, 16, 16, 16, 16}
)

// Palette holds the tiles a level is built from.
type Palette struct {
	Full    *Tile // Solid block
	Slope   *Tile // 45 degree ramp rising to the right
	RvSlope *Tile // 45 degree ramp rising to the left
	Half    *Tile // Bottom half solid
}

// NewPalette builds the standard tile palette.
func NewPalette() (*Palette, error) {
	var p Palette
	var err error

	if p.Full, err = NewTile(TileDef{Heights: fullProfile, Widths: fullProfile, Solidity: SolidAll}); err != nil {
		return nil, fmt.Errorf("full tile: %w", err)
	}
	if p.Slope, err = NewTile(TileDef{Heights: slopeProfile, Widths: slopeProfile, Angle: 45, Solidity: SolidBottom}); err != nil {
		return nil, fmt.Errorf("slope tile: %w", err)
	}
	p.RvSlope, err = NewTile(TileDef{
		Heights:             rvSlopeProfile,
		Widths:              slopeProfile,
		Angle:               -45,
		Solidity:            SolidBottom,
		FlippedHorizontally: true,
	})
	if err != nil {
		return nil, fmt.Errorf("reverse slope tile: %w", err)
	}
	if p.Half, err = NewTile(TileDef{Heights: halfHeights, Widths: halfWidths, Solidity: SolidBottom}); err != nil {
		return nil, fmt.Errorf("half tile: %w", err)
	}
	return &p, nil
}

// failSpan marks span as failed at stage and returns err wrapped with the stage.
func failSpan(span trace.Span, stage string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, stage)
	return fmt.Errorf("%s: %w", stage, err)
}

// BuildTestLevel constructs the fixed in-memory test level.
func BuildTestLevel(ctx context.Context) (*TileMap, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.build")
	defer span.End()

	startTime := time.Now()

	p, err := NewPalette()
	if err != nil {
		return nil, failSpan(span, "palette", err)
	}

	f, s, rv, h, e := p.Full, p.Slope, p.RvSlope, p.Half, (*Tile)(nil)

	full, err := NewChunk(fillGrid(f), "sprites/AIZ2/95.png")
	if err != nil {
		return nil, failSpan(span, "chunk full", err)
	}
	half, err := NewChunk([][]*Tile{
		{f, f, h, e, e, e},
		{f, f, h, e, e, e},
		{f, f, h, e, e, e},
		{f, f, h, e, e, e},
		{f, f, h, e, e, e},
		{f, f, h, e, e, e},
	}, "sprites/AIZ2/176.png")
	if err != nil {
		return nil, failSpan(span, "chunk half", err)
	}
	rvRamp, err := NewChunk([][]*Tile{
		{f, f, f, f, f, rv},
		{f, f, f, f, rv, e},
		{f, f, f, rv, e, e},
		{f, f, rv, e, e, e},
		{f, rv, e, e, e, e},
		{rv, e, e, e, e, e},
	}, "sprites/AIZ2/130.png")
	if err != nil {
		return nil, failSpan(span, "chunk rvRamp", err)
	}
	ramp, err := NewChunk([][]*Tile{
		{s, e, e, e, e, e},
		{f, s, e, e, e, e},
		{f, f, s, e, e, e},
		{f, f, f, s, e, e},
		{f, f, f, f, s, e},
		{f, f, f, f, f, s},
	}, "sprites/AIZ2/65.png")
	if err != nil {
		return nil, failSpan(span, "chunk ramp", err)
	}
	empty := EmptyChunk()

	level := NewTileMap([][]*Chunk{
		{ramp},
		{full},
		{full},
		{full},
		{empty},
		{empty, full},
		{empty},
		{full},
		{full},
		{full},
		{full},
		{full, full},
		{full, full},
		{empty, rvRamp, empty, empty, empty, full},
		{full, empty, empty, empty, empty, full},
		{empty, ramp, empty, half, full},
		{empty, empty, empty, half},
		{empty, empty, rvRamp},
		{empty, rvRamp},
		{empty, ramp},
		{empty, empty, ramp},
		{empty},
		{empty},
		{empty},
		{empty},
		{half},
	})

	span.SetAttributes(
		attribute.Int("level.columns", level.Columns()),
		attribute.Int("level.pixel_width", level.PixelWidth()),
		attribute.Int64("level.build_us", time.Since(startTime).Microseconds()),
	)
	return level, nil
}

// MustBuildTestLevel builds the test level, panicking on error.
func MustBuildTestLevel(ctx context.Context) *TileMap {
	level, err := BuildTestLevel(ctx)
	if err != nil {
		panic(err)
	}
	return level
}

// fillGrid returns a chunk grid with every cell set to t.
func fillGrid(t *Tile) [][]*Tile {
	grid := make([][]*Tile, TilesPerChunk)
	for x := range grid {
		grid[x] = make([]*Tile, TilesPerChunk)
		for y := range grid[x] {
			grid[x][y] = t
		}
	}
	return grid
}
