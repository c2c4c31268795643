package game

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kr/text"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/sonicswirl/internal/entity"
	"github.com/samdwyer/sonicswirl/internal/telemetry"
)

// Report summarises a headless run.
type Report struct {
	SessionID     string
	Script        string
	Ticks         int
	DT            float64
	Final         entity.Snapshot
	Events        []TimedEvent
	MinX          float64
	MaxX          float64
	MaxSpeed      float64
	AirborneTicks int
}

// RunHeadless steps a fresh simulation ticks times with the named script driving input.
func RunHeadless(ctx context.Context, cfg Config, scriptName string, ticks int) (*Report, error) {
	script, err := LookupScript(scriptName)
	if err != nil {
		return nil, err
	}
	if ticks < 0 {
		return nil, fmt.Errorf("ticks = %d: want >= 0: %w", ticks, ErrInvalidConfig)
	}

	sessionID := telemetry.NewSessionID()
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.headless")
	defer span.End()
	span.SetAttributes(telemetry.SessionAttributes(sessionID, true)...)
	span.SetAttributes(
		attribute.String("script", scriptName),
		attribute.Int("ticks", ticks),
	)

	sim, err := NewSimulation(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "init")
		return nil, err
	}

	dt := cfg.HeadlessDT()
	start := sim.Snapshot()
	r := &Report{
		SessionID: sessionID,
		Script:    scriptName,
		Ticks:     ticks,
		DT:        dt,
		MinX:      start.Position.X,
		MaxX:      start.Position.X,
	}

	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events := sim.Step(dt, script(i))
		recordEvents(span, sim.Tick(), events)
		for _, e := range events {
			r.Events = append(r.Events, TimedEvent{Tick: sim.Tick(), Event: e})
		}

		snap := sim.Snapshot()
		r.MinX = min(r.MinX, snap.Position.X)
		r.MaxX = max(r.MaxX, snap.Position.X)
		r.MaxSpeed = max(r.MaxSpeed, math.Abs(snap.GroundSpeed), math.Hypot(snap.Velocity.X, snap.Velocity.Y))
		if snap.State == entity.Airborne && !snap.DebugMode {
			r.AirborneTicks++
		}
	}
	r.Final = sim.Snapshot()

	span.SetAttributes(
		attribute.Float64("player.final_x", r.Final.Position.X),
		attribute.Float64("player.final_y", r.Final.Position.Y),
		attribute.String("player.final_mode", r.Final.Mode()),
		attribute.Int("player.events", len(r.Events)),
	)
	return r, nil
}

// Count returns how many events of kind the run produced.
func (r *Report) Count(kind entity.EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Format renders the report as plain text wrapped to width columns.
func (r *Report) Format(width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	fmt.Fprintf(&b, "session %s\n", r.SessionID)
	fmt.Fprintf(&b, "script  %s, %d ticks at %.4fs (%.2fs simulated)\n",
		r.Script, r.Ticks, r.DT, float64(r.Ticks)*r.DT)
	fmt.Fprintf(&b, "final   %s\n", r.Final)

	summary := fmt.Sprintf(
		"Travelled x %.2f..%.2f, top speed %.2f px/s, airborne for %d ticks; %d jumps, %d landings, %d wall hits, %d respawns.",
		r.MinX, r.MaxX, r.MaxSpeed, r.AirborneTicks,
		r.Count(entity.EventJumped), r.Count(entity.EventLanded),
		r.Count(entity.EventWallHit), r.Count(entity.EventRespawned))
	b.WriteString(text.Wrap(summary, width))
	b.WriteString("\n")

	if len(r.Events) == 0 {
		b.WriteString("no events\n")
		return b.String()
	}
	b.WriteString("events\n")
	var lines strings.Builder
	for _, e := range r.Events {
		lines.WriteString(e.String())
		lines.WriteString("\n")
	}
	b.WriteString(text.Indent(lines.String(), "  "))
	return b.String()
}
