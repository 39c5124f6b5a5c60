package orchestratornode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "tripdesigner/agent/contract"
)

const (
	updatedItineraryHeading = "**📋 Updated Itinerary:**"

	revisionFailureText = "❌ Couldn't apply that change, so your current itinerary is unchanged. Please try rephrasing the request."
)

// Revise runs one free-text edit against the stored itinerary. A rejected or
// failed revision keeps the previous itinerary and reports failure in the
// reply.
func Revise(
	ctx context.Context,
	in *GraphState,
	models contractx.Registry,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	revised, err := models.Reviser().Revise(ctx, in.Session.Itinerary, in.Text)
	if err != nil {
		log.Debug().Err(err).Str("session", in.SessionID).Msg("revision rejected")
		in.Reply = revisionFailureText
		return in, nil
	}

	in.Session.Itinerary = revised
	in.Reply = updatedItineraryHeading + "\n\n" + revised
	return in, nil
}
