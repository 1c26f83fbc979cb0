package report

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ozzus/flight-validator/internal/domain/models"
)

const (
	messagePastDeparture       = "This voyage is gone already"
	messageInvertedSegment     = "This voyage is playing with a time"
	messageExcessiveGroundTime = "Too long"
)

// ConsoleSink prints the flight list followed by one verdict line per flight.
type ConsoleSink struct {
	out    io.Writer
	colors map[models.Outcome]*color.Color
}

func NewConsoleSink(out io.Writer, colored bool) *ConsoleSink {
	colors := map[models.Outcome]*color.Color{
		models.OutcomeValid:               color.New(color.FgGreen),
		models.OutcomePastDeparture:       color.New(color.FgRed),
		models.OutcomeInvertedSegment:     color.New(color.FgYellow),
		models.OutcomeExcessiveGroundTime: color.New(color.FgMagenta),
	}
	for _, c := range colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &ConsoleSink{out: out, colors: colors}
}

func (s *ConsoleSink) WriteReport(ctx context.Context, results []models.ClassifiedFlight) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, result := range results {
		if _, err := fmt.Fprintln(s.out, result.Flight.String()); err != nil {
			return fmt.Errorf("write flight: %w", err)
		}
	}
	if _, err := fmt.Fprint(s.out, "\n\n\n"); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	for _, result := range results {
		line := Verdict(result)
		c, ok := s.colors[result.Outcome]
		if !ok {
			if _, err := fmt.Fprintln(s.out, line); err != nil {
				return fmt.Errorf("write verdict: %w", err)
			}
			continue
		}
		if _, err := c.Fprintln(s.out, line); err != nil {
			return fmt.Errorf("write verdict: %w", err)
		}
	}

	return nil
}

// Verdict is the human readable line for a classified flight. Valid flights
// are echoed back as-is.
func Verdict(result models.ClassifiedFlight) string {
	switch result.Outcome {
	case models.OutcomePastDeparture:
		return messagePastDeparture
	case models.OutcomeInvertedSegment:
		return messageInvertedSegment
	case models.OutcomeExcessiveGroundTime:
		return messageExcessiveGroundTime
	case models.OutcomeValid:
		return result.Flight.String()
	default:
		return result.Outcome.String()
	}
}
