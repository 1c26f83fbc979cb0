package models

import (
	"fmt"
	"strings"
	"time"

	derr "github.com/ozzus/flight-validator/internal/domain/errors"
)

const segmentTimeLayout = "2006-01-02T15:04"

// Segment is one leg of a flight. Departure after arrival is allowed here;
// detecting it is the validator's job.
type Segment struct {
	departure time.Time
	arrival   time.Time
}

func NewSegment(departure, arrival time.Time) (Segment, error) {
	if departure.IsZero() {
		return Segment{}, fmt.Errorf("segment departure is required: %w", derr.ErrInvalidArgument)
	}
	if arrival.IsZero() {
		return Segment{}, fmt.Errorf("segment arrival is required: %w", derr.ErrInvalidArgument)
	}

	return Segment{departure: departure, arrival: arrival}, nil
}

func (s Segment) Departure() time.Time {
	return s.departure
}

func (s Segment) Arrival() time.Time {
	return s.arrival
}

func (s Segment) String() string {
	return "[" + s.departure.Format(segmentTimeLayout) + "|" + s.arrival.Format(segmentTimeLayout) + "]"
}

// Flight is an ordered, non-empty sequence of segments.
type Flight struct {
	segments []Segment
}

func NewFlight(segments ...Segment) (Flight, error) {
	if len(segments) == 0 {
		return Flight{}, fmt.Errorf("flight must have at least one segment: %w", derr.ErrInvalidArgument)
	}

	copied := make([]Segment, len(segments))
	copy(copied, segments)

	return Flight{segments: copied}, nil
}

// FlightFromTimes builds a flight from consecutive (departure, arrival) pairs.
func FlightFromTimes(times ...time.Time) (Flight, error) {
	if len(times)%2 != 0 {
		return Flight{}, fmt.Errorf("even number of times required, got %d: %w", len(times), derr.ErrInvalidArgument)
	}

	segments := make([]Segment, 0, len(times)/2)
	for i := 0; i+1 < len(times); i += 2 {
		segment, err := NewSegment(times[i], times[i+1])
		if err != nil {
			return Flight{}, fmt.Errorf("segment %d: %w", i/2, err)
		}
		segments = append(segments, segment)
	}

	return NewFlight(segments...)
}

func (f Flight) Segments() []Segment {
	out := make([]Segment, len(f.segments))
	copy(out, f.segments)
	return out
}

func (f Flight) Len() int {
	return len(f.segments)
}

func (f Flight) Segment(i int) Segment {
	return f.segments[i]
}

func (f Flight) String() string {
	parts := make([]string, 0, len(f.segments))
	for _, s := range f.segments {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}
