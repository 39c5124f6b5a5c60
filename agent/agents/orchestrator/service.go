// Package orchestrator drives one trip-planning conversation turn by turn:
// collect the four preferences in order, plan once, then accept revisions.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "tripdesigner/agent/contract"
	nodex "tripdesigner/agent/nodes/orchestrator"
	statex "tripdesigner/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Orchestrator struct {
	store   statex.Store
	models  contractx.Registry
	flights contractx.FlightFinder
	hotels  contractx.HotelFinder

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(
	store statex.Store,
	models contractx.Registry,
	flights contractx.FlightFinder,
	hotels contractx.HotelFinder,
) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if models == nil {
		return nil, errors.New("model registry is required")
	}
	if flights == nil {
		return nil, errors.New("flight finder is required")
	}
	if hotels == nil {
		return nil, errors.New("hotel finder is required")
	}

	o := &Orchestrator{
		store:   store,
		models:  models,
		flights: flights,
		hotels:  hotels,
		now:     time.Now,
	}

	graphRunner, err := o.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage runs one full turn for the session and returns the assistant
// reply.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID string, text string) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Greeting returns the opening question for a fresh session.
func (o *Orchestrator) Greeting(ctx context.Context, sessionID string) (string, error) {
	st, err := o.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return "", err
		}
		st = statex.NewConversationState(sessionID, o.now())
	}
	return firstQuestion(st), nil
}

// EndSession destroys the session state. Conversation state never outlives
// the interactive session.
func (o *Orchestrator) EndSession(ctx context.Context, sessionID string) error {
	return o.store.Delete(ctx, sessionID)
}
