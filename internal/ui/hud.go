package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/sonicswirl/internal/entity"
	"github.com/samdwyer/sonicswirl/internal/gamedata"
	"github.com/samdwyer/sonicswirl/internal/physics"
	"github.com/samdwyer/sonicswirl/internal/world"
)

// statusLines is the number of rows reserved under the level view.
const statusLines = 4

const helpText = "arrows move  space jump  q debug  e rotate  esc quit"

var sensorNames = [4]string{"A", "B", "E", "F"}

// HUD draws the level around the player and the player's status.
type HUD struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewHUD creates a HUD for the given screen.
func NewHUD(screen *Screen, palette gamedata.Palette) *HUD {
	return &HUD{screen: screen, palette: palette}
}

// SetPalette replaces the HUD colours.
func (h *HUD) SetPalette(palette gamedata.Palette) {
	h.palette = palette
}

// Render draws one frame: the level, the player, the status rows and recent event lines.
func (h *HUD) Render(tick int, level *world.TileMap, snap entity.Snapshot, events []string) {
	h.screen.Clear()
	w, ht := h.screen.Size()
	viewHeight := ht - statusLines
	if viewHeight > 0 {
		h.drawLevel(level, snap, w, viewHeight)
	}

	for i, line := range events {
		if i >= viewHeight {
			break
		}
		h.screen.DrawText(0, i, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	row := max(viewHeight, 0)
	modeStyle := tcell.StyleDefault.Foreground(h.modeColor(snap)).Bold(true)
	x := h.screen.DrawText(0, row, fmt.Sprintf("%6d ", tick), tcell.StyleDefault)
	h.screen.DrawText(x, row, snap.String(), modeStyle)

	x = 0
	for i, s := range snap.Sensors {
		color := h.palette.SensorInactive
		if s.Active {
			color = h.palette.SensorActive
		}
		label := fmt.Sprintf("%s %7.2f  ", sensorNames[i], s.Distance)
		x = h.screen.DrawText(x, row+1, label, tcell.StyleDefault.Foreground(color))
	}
	if snap.Jumping {
		h.screen.DrawText(x, row+1, "jumping", tcell.StyleDefault.Foreground(h.palette.Airborne))
	}

	h.screen.DrawText(0, row+3, helpText, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	h.screen.Show()
}

func (h *HUD) modeColor(snap entity.Snapshot) tcell.Color {
	switch {
	case snap.DebugMode:
		return h.palette.Debug
	case snap.State == entity.Grounded:
		return h.palette.Grounded
	default:
		return h.palette.Airborne
	}
}

// drawLevel draws one cell per tile, centred on the player's tile.
func (h *HUD) drawLevel(level *world.TileMap, snap entity.Snapshot, w, viewHeight int) {
	playerX := floorDiv(physics.Round(snap.Position.X), world.TileLength)
	playerY := floorDiv(physics.Round(snap.Position.Y), world.TileLength)
	left := playerX - w/2
	top := playerY + viewHeight/2

	tileStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for cy := 0; cy < viewHeight; cy++ {
		ty := top - cy
		for cx := 0; cx < w; cx++ {
			tx := left + cx
			tile := tileAt(level, tx, ty)
			if r := tileRune(tile); r != ' ' {
				h.screen.SetContent(cx, cy, r, tileStyle)
			}
		}
	}

	playerStyle := tcell.StyleDefault.Foreground(h.modeColor(snap)).Bold(true)
	h.screen.SetContent(playerX-left, top-playerY, playerRune(snap), playerStyle)
}

func tileAt(level *world.TileMap, tx, ty int) *world.Tile {
	return level.GetTile(
		floorDiv(tx, world.TilesPerChunk), floorDiv(ty, world.TilesPerChunk),
		physics.FloorMod(tx, world.TilesPerChunk), physics.FloorMod(ty, world.TilesPerChunk),
	)
}

// tileRune picks a glyph that suggests the tile's shape.
func tileRune(t *world.Tile) rune {
	if t.IsEmpty() {
		return ' '
	}
	switch {
	case t.Flagged():
		return '#'
	case t.Angle() > 0:
		return '/'
	case t.Angle() < 0:
		return '\\'
	case t.FlippedVertically():
		return '▀'
	case t.Height(0) <= world.TileLength/2:
		return '▄'
	default:
		return '█'
	}
}

func playerRune(snap entity.Snapshot) rune {
	switch {
	case snap.DebugMode:
		return '+'
	case snap.FacingLeft:
		return '<'
	default:
		return '>'
	}
}

func floorDiv(a, b int) int {
	return (a - physics.FloorMod(a, b)) / b
}
