// Package game provides the simulation context and the interactive game loop.
package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gopkg.in/eapache/queue.v1"

	"github.com/samdwyer/sonicswirl/internal/entity"
	"github.com/samdwyer/sonicswirl/internal/gamedata"
	"github.com/samdwyer/sonicswirl/internal/physics"
	"github.com/samdwyer/sonicswirl/internal/telemetry"
	"github.com/samdwyer/sonicswirl/internal/world"
)

// historySize is how many recent player events a simulation keeps.
const historySize = 8

// TimedEvent is a player event stamped with the tick that produced it.
type TimedEvent struct {
	Tick int
	entity.Event
}

// String formats the event for logs and the status line.
func (e TimedEvent) String() string {
	return fmt.Sprintf("%6d %-13s (%.1f, %.1f) gsp=%.2f angle=%.1f",
		e.Tick, e.Kind, e.Position.X, e.Position.Y, e.GroundSpeed, e.GroundAngle)
}

// Simulation owns the level and the player for one session.
type Simulation struct {
	level   *world.TileMap
	player  *entity.Player
	tick    int
	elapsed float64
	history *queue.Queue
}

// NewSimulation builds the test level and spawns the player on it.
func NewSimulation(ctx context.Context, cfg Config) (*Simulation, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "simulation.init")
	defer span.End()

	tuning, err := loadTuning(cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "tuning")
		return nil, err
	}

	level, err := world.BuildTestLevel(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "level")
		return nil, err
	}

	spawn := physics.Vector{X: world.StartX, Y: world.StartY}
	s := &Simulation{
		level:   level,
		player:  entity.NewPlayer(level, tuning, spawn),
		history: queue.New(),
	}
	if cfg.Debug {
		s.player.Update(0, entity.Input{DebugToggle: true})
		s.record(s.player.DrainEvents())
	}

	span.SetAttributes(
		attribute.Float64("player.start_x", spawn.X),
		attribute.Float64("player.start_y", spawn.Y),
		attribute.Bool("player.debug", cfg.Debug),
		attribute.String("tuning.file", cfg.TuningFile),
		attribute.Float64("tuning.max_speed", tuning.MaxSpeed),
	)
	return s, nil
}

func loadTuning(cfg Config) (gamedata.PlayerTuning, error) {
	if cfg.TuningFile == "" {
		return gamedata.LoadTuning()
	}
	return gamedata.LoadTuningFile(cfg.TuningFile)
}

// Step advances the simulation by dt seconds and returns the player events of the tick.
func (s *Simulation) Step(dt float64, in entity.Input) []entity.Event {
	s.player.Update(dt, in)
	s.tick++
	s.elapsed += dt

	events := s.player.DrainEvents()
	s.record(events)
	return events
}

func (s *Simulation) record(events []entity.Event) {
	for _, e := range events {
		if s.history.Length() == historySize {
			s.history.Remove()
		}
		s.history.Add(TimedEvent{Tick: s.tick, Event: e})
	}
}

// RecentEvents returns up to the last few events, oldest first.
func (s *Simulation) RecentEvents() []TimedEvent {
	events := make([]TimedEvent, s.history.Length())
	for i := range events {
		events[i] = s.history.Get(i).(TimedEvent)
	}
	return events
}

// ReloadTuning overlays the YAML file at path on the defaults and applies it to the player.
// The current tuning is kept when the file is invalid.
func (s *Simulation) ReloadTuning(path string) (gamedata.PlayerTuning, error) {
	tuning, err := gamedata.LoadTuningFile(path)
	if err != nil {
		return s.player.Tuning(), err
	}
	s.player.SetTuning(tuning)
	return tuning, nil
}

// Snapshot returns the player's pose after the last tick.
func (s *Simulation) Snapshot() entity.Snapshot { return s.player.Snapshot() }

// Tick returns the number of completed steps.
func (s *Simulation) Tick() int { return s.tick }

// Elapsed returns the simulated seconds so far.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Level returns the level the player moves through.
func (s *Simulation) Level() *world.TileMap { return s.level }
