package orchestratornode

import (
	"context"
	"fmt"

	contractx "tripdesigner/agent/contract"
	statex "tripdesigner/agent/state"
)

// SessionClosed answers turns arriving after the session was marked done.
func SessionClosed(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	in.Reply = "This trip is already planned. Start a new session to plan another one."
	return in, nil
}

func SaveState(
	ctx context.Context,
	in *GraphState,
	store statex.Store,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	in.Session.AppendTurn(statex.SpeakerAssistant, in.Reply)
	in.Session.Touch(in.Now)
	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("state validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}
