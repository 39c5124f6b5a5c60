package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"tripdesigner/agent/intake"
	nodex "tripdesigner/agent/nodes/orchestrator"
	statex "tripdesigner/agent/state"
)

func (o *Orchestrator) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateRequest(in, o.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("load_or_create_state",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.LoadOrCreateState(ctx, in, o.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_or_create_state: %w", err)
	}

	if err := graph.AddLambdaNode("advance_intake",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.AdvanceIntake(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node advance_intake: %w", err)
	}

	if err := graph.AddLambdaNode("finish_intake",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finish_intake: %w", err)
	}

	if err := graph.AddLambdaNode("plan_trip",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.PlanTrip(ctx, in, o.flights, o.hotels, o.models)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node plan_trip: %w", err)
	}

	if err := graph.AddLambdaNode("revise",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Revise(ctx, in, o.models)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node revise: %w", err)
	}

	if err := graph.AddLambdaNode("session_closed",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.SessionClosed(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node session_closed: %w", err)
	}

	if err := graph.AddLambdaNode("save_state",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.SaveState(ctx, in, o.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node save_state: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *nodex.GraphState) (string, error) {
			if in == nil || in.Session == nil {
				return "", fmt.Errorf("turn branch: graph session is nil")
			}
			switch {
			case in.Reply != "":
				return "finish_intake", nil
			case in.Session.Stage == statex.StagePlanning:
				return "plan_trip", nil
			case in.Session.Stage == statex.StageReviewing:
				return "revise", nil
			case in.Session.Stage == statex.StageDone:
				return "session_closed", nil
			default:
				return "finish_intake", nil
			}
		},
		map[string]bool{
			"finish_intake":  true,
			"plan_trip":      true,
			"revise":         true,
			"session_closed": true,
		},
	)

	if err := graph.AddBranch("advance_intake", branch); err != nil {
		return nil, fmt.Errorf("add turn branch: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "load_or_create_state"},
		{"load_or_create_state", "advance_intake"},
		{"finish_intake", "save_state"},
		{"plan_trip", "save_state"},
		{"revise", "save_state"},
		{"session_closed", "save_state"},
		{"save_state", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.turn"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}

func firstQuestion(st *statex.ConversationState) string {
	if st == nil || st.Stage != statex.StageCollecting {
		return ""
	}
	return intake.NextQuestion(&st.Preferences)
}
