package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ozzus/flight-validator/internal/application/validator"
	"github.com/ozzus/flight-validator/internal/domain/models"
	"github.com/ozzus/flight-validator/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type ValidationService struct {
	log       *zap.Logger
	validator *validator.Validator
	source    ports.FlightSource
	sink      ports.ReportSink
	recorder  ports.ClassificationRecorder
}

func NewValidationService(log *zap.Logger, v *validator.Validator, source ports.FlightSource, sink ports.ReportSink, recorder ports.ClassificationRecorder) *ValidationService {
	if log == nil {
		log = zap.NewNop()
	}
	if v == nil {
		v = validator.New(validator.HourOfDayGroundTime)
	}

	return &ValidationService{
		log:       log,
		validator: v,
		source:    source,
		sink:      sink,
		recorder:  recorder,
	}
}

// Validate classifies every flight from the source against now and hands the
// results, in source order, to the sink.
func (s *ValidationService) Validate(ctx context.Context, now time.Time) ([]models.ClassifiedFlight, error) {
	const op = "service.Validate"
	tracer := otel.Tracer("flight-validator/service")
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.String("validator.now", now.Format(time.RFC3339)))

	logger := s.log.With(
		zap.String("op", op),
		zap.Time("now", now),
	)

	flights, err := s.source.ListFlights(ctx)
	if err != nil {
		logger.Warn("failed to load flights", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load flights")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results := s.validator.ClassifyAll(now, flights)

	counts := make(map[models.Outcome]int, len(models.Outcomes))
	for i, result := range results {
		counts[result.Outcome]++
		if s.recorder != nil {
			s.recorder.RecordOutcome(result.Outcome)
		}
		logger.Debug("flight classified",
			zap.Int("index", i),
			zap.Stringer("flight", result.Flight),
			zap.Stringer("outcome", result.Outcome),
		)
	}

	for _, outcome := range models.Outcomes {
		span.SetAttributes(attribute.Int("validator.outcome."+outcome.String(), counts[outcome]))
	}

	if s.sink != nil {
		if err := s.sink.WriteReport(ctx, results); err != nil {
			logger.Warn("failed to write report", zap.Error(err))
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "failed to write report")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	span.SetAttributes(attribute.Int("validator.flights_count", len(results)))
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("flights classified",
		zap.Int("flights_count", len(results)),
		zap.Int("valid", counts[models.OutcomeValid]),
		zap.Int("past_departure", counts[models.OutcomePastDeparture]),
		zap.Int("inverted_segment", counts[models.OutcomeInvertedSegment]),
		zap.Int("excessive_ground_time", counts[models.OutcomeExcessiveGroundTime]),
	)
	return results, nil
}
