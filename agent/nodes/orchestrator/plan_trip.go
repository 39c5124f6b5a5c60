package orchestratornode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "tripdesigner/agent/contract"
	statex "tripdesigner/agent/state"
)

const (
	itineraryHeading = "**📋 Your Custom Itinerary:**"

	// Shown verbatim when the model output fails the marker check or the
	// call itself errors. The session stays in planning so the next message
	// retries.
	synthesisFailureText = "❌ The AI agent failed to generate a valid itinerary. This can sometimes happen due to high traffic. Please try again."
)

// PlanTrip recomputes both summaries fresh, synthesizes the itinerary once,
// and composes the planning reply. Collaborator failures become reply text,
// never node errors.
func PlanTrip(
	ctx context.Context,
	in *GraphState,
	flights contractx.FlightFinder,
	hotels contractx.HotelFinder,
	models contractx.Registry,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	prefs := in.Session.Preferences
	if !prefs.Complete() {
		return nil, fmt.Errorf("%w: planning requires complete preferences", contractx.ErrValidation)
	}

	flightReport := flights.Search(ctx, prefs.DepartureCity, prefs.Destination, prefs.TripDays())
	hotelReport := hotels.Search(ctx, prefs.Destination, prefs.BudgetTier, prefs.TripDays())

	flightText := flightReport.Render()
	hotelText := hotelReport.Render()
	in.Session.FlightReport = flightText
	in.Session.HotelReport = hotelText

	itinerary, err := models.Synthesizer().Synthesize(ctx, contractx.SynthesisRequest{
		Destination:   prefs.Destination,
		Days:          prefs.TripDays(),
		DepartureCity: prefs.DepartureCity,
		BudgetTier:    prefs.BudgetTier,
		FlightOptions: flightText,
		HotelOptions:  hotelText,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", in.SessionID).Msg("itinerary synthesis failed")
		in.Reply = composePlanningReply(flightText, hotelText, synthesisFailureText)
		return in, nil
	}

	in.Session.Itinerary = itinerary
	in.Session.Stage = statex.StageReviewing
	in.Reply = composePlanningReply(flightText, hotelText, itinerary)
	return in, nil
}

func composePlanningReply(flightText, hotelText, itinerary string) string {
	return strings.Join([]string{flightText, hotelText, itineraryHeading + "\n\n" + itinerary}, "\n\n")
}
