package yamlsource

import (
	"context"
	"fmt"
	"os"
	"time"

	derr "github.com/ozzus/flight-validator/internal/domain/errors"
	"github.com/ozzus/flight-validator/internal/domain/models"
	"gopkg.in/yaml.v3"
)

type flightsFile struct {
	Flights []flightDTO `yaml:"flights"`
}

type flightDTO struct {
	Segments []segmentDTO `yaml:"segments"`
}

type segmentDTO struct {
	Departure time.Time `yaml:"departure"`
	Arrival   time.Time `yaml:"arrival"`
}

// Source loads flights from a YAML document on disk.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) ListFlights(ctx context.Context) ([]models.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read flights file %s: %v: %w", s.path, err, derr.ErrSourceUnavailable)
	}

	return Parse(data)
}

func Parse(data []byte) ([]models.Flight, error) {
	var doc flightsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode flights yaml: %v: %w", err, derr.ErrInvalidArgument)
	}

	flights := make([]models.Flight, 0, len(doc.Flights))
	for i, dto := range doc.Flights {
		segments := make([]models.Segment, 0, len(dto.Segments))
		for j, seg := range dto.Segments {
			segment, err := models.NewSegment(seg.Departure, seg.Arrival)
			if err != nil {
				return nil, fmt.Errorf("flights[%d].segments[%d]: %w", i, j, err)
			}
			segments = append(segments, segment)
		}

		flight, err := models.NewFlight(segments...)
		if err != nil {
			return nil, fmt.Errorf("flights[%d]: %w", i, err)
		}
		flights = append(flights, flight)
	}

	return flights, nil
}
