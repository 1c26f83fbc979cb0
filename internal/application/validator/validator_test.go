package validator

import (
	"errors"
	"testing"
	"time"

	derr "github.com/ozzus/flight-validator/internal/domain/errors"
	"github.com/ozzus/flight-validator/internal/domain/models"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func mustFlight(t *testing.T, times ...time.Time) models.Flight {
	t.Helper()
	flight, err := models.FlightFromTimes(times...)
	if err != nil {
		t.Fatalf("FlightFromTimes: %v", err)
	}
	return flight
}

func TestClassify_Rules(t *testing.T) {
	tests := []struct {
		name  string
		times []time.Time
		want  models.Outcome
	}{
		{
			name:  "single segment",
			times: []time.Time{at(10, 10, 0), at(10, 12, 0)},
			want:  models.OutcomeValid,
		},
		{
			name:  "departure equals arrival",
			times: []time.Time{at(10, 10, 0), at(10, 10, 0)},
			want:  models.OutcomeValid,
		},
		{
			name:  "one hour connection",
			times: []time.Time{at(10, 10, 0), at(10, 12, 0), at(10, 13, 0), at(10, 15, 0)},
			want:  models.OutcomeValid,
		},
		{
			name:  "two hour connection",
			times: []time.Time{at(10, 10, 0), at(10, 12, 0), at(10, 14, 0), at(10, 15, 0)},
			want:  models.OutcomeValid,
		},
		{
			name:  "three hour connection",
			times: []time.Time{at(10, 10, 0), at(10, 12, 0), at(10, 15, 0), at(10, 16, 0)},
			want:  models.OutcomeExcessiveGroundTime,
		},
		{
			name: "ground time summed over all connections",
			times: []time.Time{
				at(10, 10, 0), at(10, 12, 0),
				at(10, 13, 0), at(10, 14, 0),
				at(10, 16, 0), at(10, 17, 0),
			},
			want: models.OutcomeExcessiveGroundTime,
		},
		{
			name:  "arrival before departure",
			times: []time.Time{at(10, 10, 0), at(10, 4, 0)},
			want:  models.OutcomeInvertedSegment,
		},
		{
			name:  "departed in the past",
			times: []time.Time{at(1, 0, 0).Add(-time.Hour), at(10, 12, 0)},
			want:  models.OutcomePastDeparture,
		},
		{
			name:  "past departure wins over later inverted segment",
			times: []time.Time{at(1, 0, 0).AddDate(0, 0, -3), at(10, 12, 0), at(10, 15, 0), at(10, 13, 0)},
			want:  models.OutcomePastDeparture,
		},
		{
			name:  "past departure wins over excessive ground time",
			times: []time.Time{at(1, 0, 0).AddDate(0, 0, -3), at(10, 12, 0), at(10, 20, 0), at(10, 21, 0)},
			want:  models.OutcomePastDeparture,
		},
		{
			name:  "earlier inverted segment wins over later past departure",
			times: []time.Time{at(10, 10, 0), at(10, 4, 0), at(1, 0, 0).AddDate(0, 0, -1), at(10, 12, 0)},
			want:  models.OutcomeInvertedSegment,
		},
		{
			name:  "inverted second segment",
			times: []time.Time{at(10, 10, 0), at(10, 12, 0), at(10, 13, 0), at(10, 11, 0)},
			want:  models.OutcomeInvertedSegment,
		},
		{
			name:  "departure exactly now is not in the past",
			times: []time.Time{testNow, at(1, 2, 0)},
			want:  models.OutcomeValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(testNow, mustFlight(t, tt.times...))
			if got != tt.want {
				t.Fatalf("unexpected outcome: got %s want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_HourOfDayIgnoresMidnight(t *testing.T) {
	// 22:00 -> 01:00 next day is three real hours, but the hour delta is -21.
	flight := mustFlight(t, at(10, 20, 0), at(10, 22, 0), at(11, 1, 0), at(11, 3, 0))

	if got := Classify(testNow, flight); got != models.OutcomeValid {
		t.Fatalf("hour of day policy: got %s want %s", got, models.OutcomeValid)
	}
	if got := New(ElapsedGroundTime).Classify(testNow, flight); got != models.OutcomeExcessiveGroundTime {
		t.Fatalf("elapsed policy: got %s want %s", got, models.OutcomeExcessiveGroundTime)
	}
}

func TestClassify_HourOfDayIgnoresMinutes(t *testing.T) {
	// 12:10 -> 14:50 is 2h40m elapsed, hour delta is 2.
	flight := mustFlight(t, at(10, 10, 0), at(10, 12, 10), at(10, 14, 50), at(10, 16, 0))

	if got := Classify(testNow, flight); got != models.OutcomeValid {
		t.Fatalf("hour of day policy: got %s want %s", got, models.OutcomeValid)
	}
	if got := New(ElapsedGroundTime).Classify(testNow, flight); got != models.OutcomeExcessiveGroundTime {
		t.Fatalf("elapsed policy: got %s want %s", got, models.OutcomeExcessiveGroundTime)
	}
}

func TestClassify_AlwaysReturnsKnownOutcome(t *testing.T) {
	flights := []models.Flight{
		mustFlight(t, at(10, 10, 0), at(10, 12, 0)),
		mustFlight(t, at(10, 10, 0), at(10, 4, 0)),
		mustFlight(t, testNow.Add(-time.Minute), testNow),
		mustFlight(t, at(10, 10, 0), at(10, 12, 0), at(10, 23, 0), at(11, 1, 0)),
	}

	for _, policy := range []GroundTimePolicy{HourOfDayGroundTime, ElapsedGroundTime} {
		v := New(policy)
		for i, flight := range flights {
			got := v.Classify(testNow, flight)
			known := false
			for _, outcome := range models.Outcomes {
				if got == outcome {
					known = true
				}
			}
			if !known {
				t.Fatalf("flight %d: unexpected outcome %s", i, got)
			}
		}
	}
}

func TestClassifyAll_PreservesOrder(t *testing.T) {
	flights := []models.Flight{
		mustFlight(t, at(10, 10, 0), at(10, 4, 0)),
		mustFlight(t, at(10, 10, 0), at(10, 12, 0)),
		mustFlight(t, at(10, 10, 0), at(10, 12, 0), at(10, 15, 0), at(10, 16, 0)),
	}

	got := New(nil).ClassifyAll(testNow, flights)
	want := []models.Outcome{
		models.OutcomeInvertedSegment,
		models.OutcomeValid,
		models.OutcomeExcessiveGroundTime,
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected results count: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Outcome != want[i] {
			t.Fatalf("result %d: got %s want %s", i, got[i].Outcome, want[i])
		}
		if got[i].Flight.String() != flights[i].String() {
			t.Fatalf("result %d: flight order changed", i)
		}
	}
}

func TestGroundTimePolicies(t *testing.T) {
	flight := mustFlight(t, at(10, 10, 0), at(10, 12, 30), at(10, 13, 0), at(10, 14, 0), at(10, 15, 45), at(10, 16, 0))

	if got := HourOfDayGroundTime(flight); got != 2*time.Hour {
		t.Fatalf("hour of day: got %s want 2h", got)
	}
	if got := ElapsedGroundTime(flight); got != 30*time.Minute+105*time.Minute {
		t.Fatalf("elapsed: got %s want 2h15m", got)
	}

	single := mustFlight(t, at(10, 10, 0), at(10, 12, 0))
	if got := HourOfDayGroundTime(single); got != 0 {
		t.Fatalf("single segment ground time: got %s want 0", got)
	}
}

func TestParseGroundTimeMode(t *testing.T) {
	flight := mustFlight(t, at(10, 10, 0), at(10, 12, 10), at(10, 14, 50), at(10, 16, 0))

	for _, mode := range []string{"", "hour_of_day", " HOUR_OF_DAY "} {
		policy, err := ParseGroundTimeMode(mode)
		if err != nil {
			t.Fatalf("mode %q: unexpected error: %v", mode, err)
		}
		if got := policy(flight); got != 2*time.Hour {
			t.Fatalf("mode %q: got %s want 2h", mode, got)
		}
	}

	policy, err := ParseGroundTimeMode("elapsed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := policy(flight); got != 2*time.Hour+40*time.Minute {
		t.Fatalf("elapsed mode: got %s want 2h40m", got)
	}

	_, err = ParseGroundTimeMode("wall_clock")
	if !errors.Is(err, derr.ErrUnknownGroundTimeMode) {
		t.Fatalf("unexpected error: got %v want %v", err, derr.ErrUnknownGroundTimeMode)
	}
}
