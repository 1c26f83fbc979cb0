package ports

import (
	"context"

	"github.com/ozzus/flight-validator/internal/domain/models"
)

type FlightSource interface {
	ListFlights(ctx context.Context) ([]models.Flight, error)
}

type ReportSink interface {
	WriteReport(ctx context.Context, results []models.ClassifiedFlight) error
}

type ClassificationRecorder interface {
	RecordOutcome(outcome models.Outcome)
}
