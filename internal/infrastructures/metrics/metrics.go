package metrics

import (
	"fmt"

	"github.com/ozzus/flight-validator/internal/domain/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts classification outcomes.
type Collector struct {
	gatherer prometheus.Gatherer

	Classifications *prometheus.CounterVec
}

// NewCollector registers the outcome counter against reg, defaulting to the
// global registry when reg is nil. Every outcome label is pre-created at zero.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	classifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flight_classifications_total",
		Help: "Total number of classified flights, labeled by outcome.",
	}, []string{"outcome"})
	if err := reg.Register(classifications); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("collector flight_classifications_total already registered with incompatible type")
		}
		classifications = existing
	}

	for _, outcome := range models.Outcomes {
		classifications.WithLabelValues(outcome.String())
	}

	return &Collector{
		gatherer:        gatherer,
		Classifications: classifications,
	}, nil
}

func (c *Collector) RecordOutcome(outcome models.Outcome) {
	if c == nil || c.Classifications == nil {
		return
	}
	c.Classifications.WithLabelValues(outcome.String()).Inc()
}

// WriteTextfile dumps the gathered metrics in the node exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
