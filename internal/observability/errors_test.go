package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorLogsWithOperationAndAttributes(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	span := trace.SpanFromContext(ctx)

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	RecordError(
		ctx,
		span,
		logger,
		counter,
		"calculate",
		errors.New("Division by zero is not allowed"),
		attribute.String("kind", "division_by_zero"),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Level != zap.WarnLevel {
		t.Fatalf("expected level %s, got %s", zap.WarnLevel, entry.Level)
	}

	fields := entry.ContextMap()
	if fields["operation"] != "calculate" {
		t.Fatalf("expected operation %q, got %#v", "calculate", fields["operation"])
	}
	if fields["request_id"] != "req-1" {
		t.Fatalf("expected request_id %q, got %#v", "req-1", fields["request_id"])
	}
	if fields["kind"] != "division_by_zero" {
		t.Fatalf("expected kind %q, got %#v", "division_by_zero", fields["kind"])
	}
	if fields["error"] != "Division by zero is not allowed" {
		t.Fatalf("expected error field, got %#v", fields["error"])
	}
}
