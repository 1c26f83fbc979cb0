// Package fixtures provides the built-in sample flight set.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/ozzus/flight-validator/internal/domain/models"
)

// Source returns sample flights departing three days after Now.
type Source struct {
	Now time.Time
}

func NewSource(now time.Time) *Source {
	return &Source{Now: now}
}

func (s *Source) ListFlights(ctx context.Context) ([]models.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return SampleFlights(s.Now)
}

func SampleFlights(now time.Time) ([]models.Flight, error) {
	base := now.AddDate(0, 0, 3)
	h := func(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

	sets := [][]time.Time{
		// normal two hour flight
		{base, h(2)},
		// normal multi segment flight
		{base, h(2), h(3), h(5)},
		// departing in the past
		{base.AddDate(0, 0, -6), base},
		// departs before it arrives
		{base, h(-6)},
		// more than two hours ground time
		{base, h(2), h(5), h(6)},
		// more than two hours ground time over two connections
		{base, h(2), h(3), h(4), h(6), h(7)},
	}

	flights := make([]models.Flight, 0, len(sets))
	for i, times := range sets {
		flight, err := models.FlightFromTimes(times...)
		if err != nil {
			return nil, fmt.Errorf("sample flight %d: %w", i, err)
		}
		flights = append(flights, flight)
	}

	return flights, nil
}
