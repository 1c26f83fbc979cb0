// Package validator classifies flights against the fixed validity rule set.
package validator

import (
	"time"

	"github.com/ozzus/flight-validator/internal/domain/models"
)

// MaxGroundTime is the largest total connection time a valid flight may have.
const MaxGroundTime = 2 * time.Hour

type Validator struct {
	groundTime GroundTimePolicy
}

func New(policy GroundTimePolicy) *Validator {
	if policy == nil {
		policy = HourOfDayGroundTime
	}

	return &Validator{groundTime: policy}
}

// Classify uses the hour-of-day ground time policy.
func Classify(now time.Time, flight models.Flight) models.Outcome {
	return New(HourOfDayGroundTime).Classify(now, flight)
}

// Classify returns the first rule the flight trips: past departure, then
// inverted segment (both per segment in order), then excessive ground time.
func (v *Validator) Classify(now time.Time, flight models.Flight) models.Outcome {
	for i := 0; i < flight.Len(); i++ {
		segment := flight.Segment(i)
		if segment.Departure().Before(now) {
			return models.OutcomePastDeparture
		}
		if segment.Departure().After(segment.Arrival()) {
			return models.OutcomeInvertedSegment
		}
	}

	if v.groundTime(flight) > MaxGroundTime {
		return models.OutcomeExcessiveGroundTime
	}

	return models.OutcomeValid
}

// ClassifyAll keeps the input order.
func (v *Validator) ClassifyAll(now time.Time, flights []models.Flight) []models.ClassifiedFlight {
	results := make([]models.ClassifiedFlight, 0, len(flights))
	for _, flight := range flights {
		results = append(results, models.ClassifiedFlight{
			Flight:  flight,
			Outcome: v.Classify(now, flight),
		})
	}

	return results
}
