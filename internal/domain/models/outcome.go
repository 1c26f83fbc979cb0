package models

type Outcome uint8

const (
	OutcomeUnspecified Outcome = iota
	OutcomeValid
	OutcomePastDeparture
	OutcomeInvertedSegment
	OutcomeExcessiveGroundTime
)

// Outcomes lists every outcome a classification can produce.
var Outcomes = []Outcome{
	OutcomeValid,
	OutcomePastDeparture,
	OutcomeInvertedSegment,
	OutcomeExcessiveGroundTime,
}

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "VALID"
	case OutcomePastDeparture:
		return "PAST_DEPARTURE"
	case OutcomeInvertedSegment:
		return "INVERTED_SEGMENT"
	case OutcomeExcessiveGroundTime:
		return "EXCESSIVE_GROUND_TIME"
	default:
		return "UNSPECIFIED"
	}
}

type ClassifiedFlight struct {
	Flight  Flight
	Outcome Outcome
}
