package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadTuningDefaults(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"acceleration", tuning.Acceleration, 168.75},
		{"air_acceleration", tuning.AirAcceleration, 337.5},
		{"deceleration", tuning.Deceleration, 1800},
		{"friction", tuning.Friction, 168.75},
		{"slope_factor", tuning.SlopeFactor, 7.5},
		{"gravity", tuning.Gravity, -787.5},
		{"max_speed", tuning.MaxSpeed, 360},
		{"jump_force", tuning.JumpForce, 390},
		{"jump_release_speed", tuning.JumpReleaseSpeed, 240},
		{"air_drag_window", tuning.AirDragWindow, 4},
		{"debug_speed", tuning.DebugSpeed, 90},
		{"width_radius", tuning.WidthRadius, 9},
		{"height_radius", tuning.HeightRadius, 19},
		{"respawn_floor", tuning.RespawnFloor, -100},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LoadTuning().%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadTuningFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := "player:\n  max_speed: 600\n  gravity: -500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tuning, err := LoadTuningFile(path)
	if err != nil {
		t.Fatalf("LoadTuningFile() error = %v", err)
	}
	if tuning.MaxSpeed != 600 {
		t.Errorf("MaxSpeed = %v, want 600", tuning.MaxSpeed)
	}
	if tuning.Gravity != -500 {
		t.Errorf("Gravity = %v, want -500", tuning.Gravity)
	}
	if tuning.Acceleration != 168.75 {
		t.Errorf("Acceleration = %v, want the default 168.75", tuning.Acceleration)
	}
}

func TestLoadTuningFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTuningFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadTuningFile(missing) error = nil, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadTuningFile(bad); err == nil {
		t.Error("LoadTuningFile(malformed) error = nil, want error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  gravity: 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadTuningFile(invalid); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("LoadTuningFile(upward gravity) error = %v, want ErrInvalidTuning", err)
	}
}

func TestValidate(t *testing.T) {
	base := MustLoadTuning()

	tests := []struct {
		name   string
		mutate func(*PlayerTuning)
		valid  bool
	}{
		{"defaults", func(*PlayerTuning) {}, true},
		{"zero max speed", func(p *PlayerTuning) { p.MaxSpeed = 0 }, false},
		{"negative acceleration", func(p *PlayerTuning) { p.Acceleration = -1 }, false},
		{"zero friction", func(p *PlayerTuning) { p.Friction = 0 }, true},
		{"negative slope factor", func(p *PlayerTuning) { p.SlopeFactor = -0.5 }, false},
		{"zero gravity", func(p *PlayerTuning) { p.Gravity = 0 }, false},
		{"respawn above ground", func(p *PlayerTuning) { p.RespawnFloor = 10 }, false},
		{"zero radius", func(p *PlayerTuning) { p.HeightRadius = 0 }, false},
	}

	for _, tt := range tests {
		tuning := base
		tt.mutate(&tuning)
		err := tuning.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() error = %v, want nil", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidTuning) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidTuning", tt.name, err)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if p.Grounded == p.Airborne {
		t.Error("grounded and airborne colours are the same")
	}
	if r, g, b := p.Debug.RGB(); r != 0xF0 || g != 0x88 || b != 0x3E {
		t.Errorf("Debug.RGB() = %d,%d,%d, want 240,136,62", r, g, b)
	}
}

func TestLoadPaletteFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("hud:\n  debug: \"#000000\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	base, err := LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	p, err := LoadPaletteFile(path)
	if err != nil {
		t.Fatalf("LoadPaletteFile() error = %v", err)
	}
	if r, g, b := p.Debug.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("Debug.RGB() = %d,%d,%d, want 0,0,0", r, g, b)
	}
	if p.Grounded != base.Grounded {
		t.Errorf("Grounded = %v, want the default %v", p.Grounded, base.Grounded)
	}
}

func TestLoadPaletteFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPaletteFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadPaletteFile(missing) error = nil, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("hud:\n  grounded: \"#GG0000\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadPaletteFile(bad); err == nil {
		t.Error("LoadPaletteFile(bad colour) error = nil, want error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"#FFF", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestHUDThemeResolveReportsField(t *testing.T) {
	theme := HUDTheme{Grounded: "#000000", Airborne: "nope"}
	if _, err := theme.Resolve(); err == nil {
		t.Error("Resolve() error = nil, want error for airborne")
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player: {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  max_speed: 400\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "tuning.yaml" {
			t.Errorf("Events = %q, want tuning.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("Errors = %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestIsTuningFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"tuning.yaml", true},
		{"dir/Tuning.YML", true},
		{"tuning.yaml~", false},
		{".tuning.yaml.swp", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		if got := isTuningFile(tt.path); got != tt.want {
			t.Errorf("isTuningFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
