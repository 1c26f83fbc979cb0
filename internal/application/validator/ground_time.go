package validator

import (
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/flight-validator/internal/domain/errors"
	"github.com/ozzus/flight-validator/internal/domain/models"
)

const (
	GroundTimeModeHourOfDay = "hour_of_day"
	GroundTimeModeElapsed   = "elapsed"
)

// GroundTimePolicy sums the connection time between consecutive segments.
type GroundTimePolicy func(flight models.Flight) time.Duration

// HourOfDayGroundTime subtracts only the hour-of-day fields of the previous
// arrival and the next departure. Connections across midnight and sub-hour
// offsets come out wrong relative to real elapsed time.
func HourOfDayGroundTime(flight models.Flight) time.Duration {
	hours := 0
	for next := 1; next < flight.Len(); next++ {
		prev := next - 1
		hours += flight.Segment(next).Departure().Hour() - flight.Segment(prev).Arrival().Hour()
	}

	return time.Duration(hours) * time.Hour
}

func ElapsedGroundTime(flight models.Flight) time.Duration {
	var total time.Duration
	for next := 1; next < flight.Len(); next++ {
		prev := next - 1
		total += flight.Segment(next).Departure().Sub(flight.Segment(prev).Arrival())
	}

	return total
}

func ParseGroundTimeMode(mode string) (GroundTimePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", GroundTimeModeHourOfDay:
		return HourOfDayGroundTime, nil
	case GroundTimeModeElapsed:
		return ElapsedGroundTime, nil
	default:
		return nil, fmt.Errorf("%q: %w", mode, derr.ErrUnknownGroundTimeMode)
	}
}
