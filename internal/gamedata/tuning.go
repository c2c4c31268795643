package gamedata

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned when tuning values cannot drive the simulation.
var ErrInvalidTuning = errors.New("invalid tuning")

// PlayerTuning holds the player's physics constants loaded from YAML.
type PlayerTuning struct {
	Acceleration     float64 `yaml:"acceleration"`       // Ground acceleration toward the held direction
	AirAcceleration  float64 `yaml:"air_acceleration"`   // Airborne acceleration, no friction
	Deceleration     float64 `yaml:"deceleration"`       // Applied when holding against the motion
	Friction         float64 `yaml:"friction"`           // Decay toward zero when nothing is held
	SlopeFactor      float64 `yaml:"slope_factor"`       // Scale of the slope's pull on ground speed
	Gravity          float64 `yaml:"gravity"`            // Vertical acceleration, negative is down
	MaxSpeed         float64 `yaml:"max_speed"`          // Cap for held-direction acceleration
	JumpForce        float64 `yaml:"jump_force"`         // Jump impulse along the surface normal
	JumpReleaseSpeed float64 `yaml:"jump_release_speed"` // Rising speed kept when jump is released early
	AirDragWindow    float64 `yaml:"air_drag_window"`    // Upper bound of the vertical speed window for air drag
	DebugSpeed       float64 `yaml:"debug_speed"`        // Free-fly speed in debug mode
	WidthRadius      float64 `yaml:"width_radius"`       // Half the body width
	HeightRadius     float64 `yaml:"height_radius"`      // Half the body height
	RespawnFloor     float64 `yaml:"respawn_floor"`      // Falling to or below this y respawns
}

// TuningFile represents the structure of tuning.yaml.
type TuningFile struct {
	Player PlayerTuning `yaml:"player"`
}

// Validate reports the first value that would break the simulation.
func (t PlayerTuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"acceleration", t.Acceleration},
		{"air_acceleration", t.AirAcceleration},
		{"deceleration", t.Deceleration},
		{"max_speed", t.MaxSpeed},
		{"jump_force", t.JumpForce},
		{"width_radius", t.WidthRadius},
		{"height_radius", t.HeightRadius},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v: %w", f.name, f.value, ErrInvalidTuning)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"friction", t.Friction},
		{"slope_factor", t.SlopeFactor},
		{"jump_release_speed", t.JumpReleaseSpeed},
		{"air_drag_window", t.AirDragWindow},
		{"debug_speed", t.DebugSpeed},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v: %w", f.name, f.value, ErrInvalidTuning)
		}
	}

	if t.Gravity >= 0 {
		return fmt.Errorf("gravity must pull down, got %v: %w", t.Gravity, ErrInvalidTuning)
	}
	if t.RespawnFloor >= 0 {
		return fmt.Errorf("respawn_floor must be below the level, got %v: %w", t.RespawnFloor, ErrInvalidTuning)
	}
	return nil
}

// LoadTuning loads the default player tuning from the embedded tuning.yaml file.
func LoadTuning() (PlayerTuning, error) {
	file, err := Load[TuningFile]("tuning.yaml")
	if err != nil {
		return PlayerTuning{}, err
	}
	if err := file.Player.Validate(); err != nil {
		return PlayerTuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	return file.Player, nil
}

// MustLoadTuning loads the default player tuning, panicking on error.
func MustLoadTuning() PlayerTuning {
	tuning, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return tuning
}

// LoadTuningFile loads the defaults and overlays the file at path on them.
// The file only needs to name the values it changes.
func LoadTuningFile(path string) (PlayerTuning, error) {
	defaults, err := LoadTuning()
	if err != nil {
		return PlayerTuning{}, err
	}

	file, err := Overlay(path, TuningFile{Player: defaults})
	if err != nil {
		return PlayerTuning{}, err
	}
	if err := file.Player.Validate(); err != nil {
		return PlayerTuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return file.Player, nil
}
