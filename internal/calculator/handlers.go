package calculator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HealthMessage is the body returned by GET /api/calculator/health.
const HealthMessage = "Calculator service is running!"

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// HandleHealth handles GET /api/calculator/health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	handlers.WriteText(w, http.StatusOK, HealthMessage)
}

// HandleCalculate handles POST /api/calculator/calculate. Validation and domain
// failures both answer 400 with a full CalculationResponse echoing the input.
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	// Validation happens before the engine sees the request.
	req, err := DecodeRequest(r.Body)
	if err != nil {
		reject(ctx, span, logger, "calculate", err)
		handlers.WriteJSON(w, http.StatusBadRequest, FailedResponse(req, err))
		return
	}

	op := *req.Operation
	span.SetAttributes(
		attribute.String("calculator.operation", op),
		attribute.Float64("calculator.operand.number1", *req.Number1),
		attribute.Float64("calculator.operand.number2", *req.Number2),
	)

	start := time.Now()
	resp, err := Evaluate(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		reject(ctx, span, logger, "calculate", err)
		handlers.WriteJSON(w, http.StatusBadRequest, resp)
		return
	}

	result := float64(*resp.Result)
	recordCalculation(ctx, op, elapsed, result)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operation", op),
		zap.Float64("number1", *req.Number1),
		zap.Float64("number2", *req.Number2),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handler — chained operations (nested spans)
// ---------------------------------------------------------------------------

// HandleChain handles POST /api/calculator/chain. It runs a sequence of operations
// on a running total, with a child span for every step, and stops at the
// first failing step.
func HandleChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	req, err := DecodeChainRequest(r.Body)
	if err != nil {
		reject(ctx, span, logger, "chain", err)
		handlers.WriteJSON(w, http.StatusBadRequest, ChainResponse{
			Initial: copyFloat(req.Initial),
			Steps:   []ChainResult{},
			Message: err.Error(),
		})
		return
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", *req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)
	chainSteps.Record(ctx, int64(len(req.Steps)))

	running := *req.Initial
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		op, value := *step.Operation, *step.Value

		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d", i),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", op),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", value),
			),
		)

		start := time.Now()
		next, err := Calculate(running, value, op)
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			stepErr := fmt.Errorf("step %d: %w", i, err)
			reject(ctx, span, logger, "chain", stepErr)
			handlers.WriteJSON(w, http.StatusBadRequest, ChainResponse{
				Initial: copyFloat(req.Initial),
				Steps:   results,
				Message: stepErr.Error(),
			})
			return
		}

		recordCalculation(ctx, op, elapsed, next)

		stepSpan.SetAttributes(attribute.Float64("chain.step.result", next))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("chain step completed",
			zap.Int("step", i),
			zap.String("operation", op),
			zap.Float64("input", running),
			zap.Float64("value", value),
			zap.Float64("result", next),
		)

		running = next
		results = append(results, ChainResult{
			Operation: op,
			Value:     value,
			Result:    Float(running),
		})
	}

	span.SetAttributes(attribute.Float64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", *req.Initial),
		zap.Float64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	result := Float(running)
	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: copyFloat(req.Initial),
		Steps:   results,
		Result:  &result,
		Success: true,
		Message: MessageSuccess,
	})
}

// reject records telemetry for a failed calculation, tagged with its kind.
// opName is the endpoint rather than the operation symbol, which is
// caller-controlled when unsupported.
func reject(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error) {
	kind, _ := KindOf(err)
	observability.RecordError(ctx, span, logger, errorCounter, opName, err,
		attribute.String("kind", kind.String()),
		attribute.Bool("domain", kind.IsDomain()),
	)
}
