package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvFixedDT    = "SONICSWIRL_FIXED_DT"
	EnvTuningFile = "SONICSWIRL_TUNING_FILE"
	EnvThemeFile  = "SONICSWIRL_THEME_FILE"
	EnvTickRate   = "SONICSWIRL_TICK_RATE"
	EnvDebug      = "SONICSWIRL_DEBUG"
)

// maxTickRate keeps TickInterval at least one millisecond.
const maxTickRate = 1000

// maxStep caps a measured frame time so a stalled terminal cannot launch the
// player through the floor on the next tick.
const maxStep = 0.1

// ErrInvalidConfig is returned when an environment value cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// TickRate is the number of simulation steps per second in the interactive loop.
	TickRate int
	// FixedDT, when positive, replaces the measured frame time on every tick.
	// Used to capture reproducible runs.
	FixedDT float64
	// TuningFile is an optional YAML file overlaid on the embedded tuning.
	// The interactive loop reloads it when it changes.
	TuningFile string
	// ThemeFile is an optional YAML file overlaid on the embedded HUD colours.
	// The interactive loop reloads it when it changes.
	ThemeFile string
	// Debug starts the player in free-fly mode.
	Debug bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{TickRate: 60}
}

// ConfigFromEnv builds a Config from SONICSWIRL_* environment variables.
func ConfigFromEnv() (Config, error) {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 || rate > maxTickRate {
			return Config{}, fmt.Errorf("%s=%q: want an integer in 1..%d: %w", EnvTickRate, v, maxTickRate, ErrInvalidConfig)
		}
		cfg.TickRate = rate
	}

	if v := getenv(EnvFixedDT); v != "" {
		dt, err := strconv.ParseFloat(v, 64)
		if err != nil || dt < 0 {
			return Config{}, fmt.Errorf("%s=%q: want seconds >= 0: %w", EnvFixedDT, v, ErrInvalidConfig)
		}
		cfg.FixedDT = dt
	}

	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: want a boolean: %w", EnvDebug, v, ErrInvalidConfig)
		}
		cfg.Debug = debug
	}

	cfg.TuningFile = getenv(EnvTuningFile)
	cfg.ThemeFile = getenv(EnvThemeFile)
	return cfg, nil
}

// watchedFiles returns the override files to watch for changes.
func (c Config) watchedFiles() []string {
	var files []string
	for _, f := range []string{c.TuningFile, c.ThemeFile} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}

// TickInterval returns the wall-clock time between interactive ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// StepDT returns the seconds to simulate for a tick that took measured.
func (c Config) StepDT(measured time.Duration) float64 {
	if c.FixedDT > 0 {
		return c.FixedDT
	}
	return min(measured.Seconds(), maxStep)
}

// HeadlessDT returns the step used when there is no wall clock.
func (c Config) HeadlessDT() float64 {
	if c.FixedDT > 0 {
		return c.FixedDT
	}
	return 1 / float64(c.TickRate)
}
