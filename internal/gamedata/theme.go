package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HUDTheme holds the status line colours as hex strings.
type HUDTheme struct {
	Grounded       string `yaml:"grounded"`
	Airborne       string `yaml:"airborne"`
	Debug          string `yaml:"debug"`
	SensorActive   string `yaml:"sensor_active"`
	SensorInactive string `yaml:"sensor_inactive"`
}

// ThemeFile represents the structure of theme.yaml.
type ThemeFile struct {
	HUD HUDTheme `yaml:"hud"`
}

// Palette is a HUDTheme resolved to terminal colours.
type Palette struct {
	Grounded       tcell.Color
	Airborne       tcell.Color
	Debug          tcell.Color
	SensorActive   tcell.Color
	SensorInactive tcell.Color
}

// Resolve parses every colour in the theme.
func (h HUDTheme) Resolve() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"grounded", h.Grounded, &p.Grounded},
		{"airborne", h.Airborne, &p.Airborne},
		{"debug", h.Debug, &p.Debug},
		{"sensor_active", h.SensorActive, &p.SensorActive},
		{"sensor_inactive", h.SensorInactive, &p.SensorInactive},
	}
	for _, f := range fields {
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("hud.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// LoadPalette loads and resolves the embedded theme.yaml file.
func LoadPalette() (Palette, error) {
	file, err := Load[ThemeFile]("theme.yaml")
	if err != nil {
		return Palette{}, err
	}
	return file.HUD.Resolve()
}

// LoadPaletteFile loads the embedded theme and overlays the file at path on it.
// The file only needs to name the colours it changes.
func LoadPaletteFile(path string) (Palette, error) {
	base, err := Load[ThemeFile]("theme.yaml")
	if err != nil {
		return Palette{}, err
	}

	file, err := Overlay(path, base)
	if err != nil {
		return Palette{}, err
	}
	p, err := file.HUD.Resolve()
	if err != nil {
		return Palette{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// MustLoadPalette loads the HUD palette, panicking on error.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// ParseHexColor converts "#RRGGBB", "#RGB" or the same without "#" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
