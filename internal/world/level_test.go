package world

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestFailSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "level.build")
	err := failSpan(span, "chunk ramp", ErrInvalidDimension)
	span.End()

	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("failSpan() error = %v, want ErrInvalidDimension", err)
	}
	if got, want := err.Error(), "chunk ramp: "+ErrInvalidDimension.Error(); got != want {
		t.Errorf("failSpan() error = %q, want %q", got, want)
	}

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("len(Ended()) = %d, want 1", len(ended))
	}
	status := ended[0].Status()
	if status.Code != codes.Error || status.Description != "chunk ramp" {
		t.Errorf("Status() = %+v, want Error \"chunk ramp\"", status)
	}
	events := ended[0].Events()
	if len(events) != 1 || events[0].Name != "exception" {
		t.Errorf("Events() = %v, want one exception event", events)
	}
}
