package contract

import (
	"context"

	statex "tripdesigner/agent/state"
)

// Synthesizer turns collected preferences plus summarized options into
// itinerary text. Implementations invoke the model exactly once per call.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (string, error)
}

// Reviser applies one free-text edit instruction to an existing itinerary and
// returns the full revised document.
type Reviser interface {
	Revise(ctx context.Context, itinerary string, instruction string) (string, error)
}

type Registry interface {
	Synthesizer() Synthesizer
	Reviser() Reviser
}

// FlightFinder and HotelFinder never return Go errors: every failure mode is
// rendered into the report's Notice so the session stays usable.
type FlightFinder interface {
	Search(ctx context.Context, departureCity, arrivalCity string, tripDays int) FlightReport
}

type HotelFinder interface {
	Search(ctx context.Context, city string, tier statex.BudgetTier, tripDays int) HotelReport
}
