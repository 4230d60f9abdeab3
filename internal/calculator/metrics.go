package calculator

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	calcHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	resultGauge   metric.Float64Gauge
	chainSteps    metric.Int64Histogram
)

// InitMetrics registers the calculator's OTel metric instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	calcCounter, err = meter.Int64Counter("calculator.calculations.total",
		metric.WithDescription("Total number of successful calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("calculator.calculation.duration",
		metric.WithDescription("Duration of calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculations by error kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The finite result of the last calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	chainSteps, err = meter.Int64Histogram("calculator.chain.steps",
		metric.WithDescription("Number of steps per chained calculation"),
		metric.WithUnit("{step}"),
		metric.WithExplicitBucketBoundaries(1, 2, 5, 10, 25, 50),
	)
	if err != nil {
		return fmt.Errorf("creating chain steps histogram: %w", err)
	}

	return nil
}

func recordCalculation(ctx context.Context, op string, elapsedMS, result float64) {
	attrs := metric.WithAttributes(attribute.String("operation", op))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsedMS, attrs)

	if !math.IsNaN(result) && !math.IsInf(result, 0) {
		resultGauge.Record(ctx, result, attrs)
	}
}
