package orchestratornode

import (
	"fmt"

	contractx "tripdesigner/agent/contract"
	"tripdesigner/agent/intake"
	statex "tripdesigner/agent/state"
)

// AdvanceIntake applies the user input to the first missing preference field
// while the session is collecting. When the final field is accepted the stage
// moves to planning and Reply stays empty so the turn falls through to the
// planning path.
func AdvanceIntake(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if in.Session.Stage != statex.StageCollecting {
		return in, nil
	}

	outcome := intake.Advance(&in.Session.Preferences, in.Text)
	if outcome.Complete {
		in.Session.Stage = statex.StagePlanning
		return in, nil
	}

	in.Reply = outcome.Reply
	return in, nil
}
