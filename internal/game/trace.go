package game

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/sonicswirl/internal/entity"
)

// recordEvents adds each player event to span as a span event.
func recordEvents(span trace.Span, tick int, events []entity.Event) {
	for _, e := range events {
		span.AddEvent("player."+e.Kind.String(), trace.WithAttributes(
			attribute.Int("tick", tick),
			attribute.Float64("player.x", e.Position.X),
			attribute.Float64("player.y", e.Position.Y),
			attribute.Float64("player.ground_speed", e.GroundSpeed),
			attribute.Float64("player.ground_angle", e.GroundAngle),
		))
	}
}
