package game

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/sonicswirl/internal/entity"
)

func TestRecordEvents(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "run")
	recordEvents(span, 7, []entity.Event{
		{Kind: entity.EventJumped},
		{Kind: entity.EventWallHit},
	})
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("len(Ended()) = %d, want 1", len(ended))
	}
	events := ended[0].Events()
	if len(events) != 2 {
		t.Fatalf("len(Events()) = %d, want 2", len(events))
	}
	for i, want := range []string{"player.jumped", "player.wall_hit"} {
		if events[i].Name != want {
			t.Errorf("Events()[%d].Name = %q, want %q", i, events[i].Name, want)
		}
	}
	for _, kv := range events[0].Attributes {
		if kv.Key == "tick" && kv.Value.AsInt64() != 7 {
			t.Errorf("tick attribute = %d, want 7", kv.Value.AsInt64())
		}
	}
}
