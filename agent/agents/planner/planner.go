// Package planner synthesizes a day-by-day itinerary from collected trip
// preferences and the summarized flight and hotel options.
package planner

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "tripdesigner/agent/contract"
)

// Markers the model response must contain to be accepted. This is a crude
// acceptance check, not a structural parse.
const (
	markerSummary   = "Trip Summary"
	markerItinerary = "Daily Itinerary"
)

type Planner struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.Synthesizer = (*Planner)(nil)

func New(ctx context.Context, chatModel einomodel.BaseChatModel, systemPrompt string) (*Planner, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: planner system prompt", contractx.ErrPromptMissing)
	}

	runner, err := compileSynthesisGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile synthesis graph: %v", contractx.ErrModelInvoke, err)
	}
	return &Planner{runner: runner}, nil
}

func (p *Planner) Synthesize(ctx context.Context, req contractx.SynthesisRequest) (string, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return "", fmt.Errorf("%w: destination is required", contractx.ErrValidation)
	}
	if req.Days <= 0 {
		return "", fmt.Errorf("%w: trip days must be positive", contractx.ErrValidation)
	}

	msg, err := p.runner.Invoke(ctx, map[string]any{
		"input": buildTaskInput(req),
	})
	if err != nil {
		return "", fmt.Errorf("%w: synthesis invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: empty synthesis response", contractx.ErrFormatViolation)
	}

	itinerary := strings.TrimSpace(msg.Content)
	if !strings.Contains(itinerary, markerSummary) || !strings.Contains(itinerary, markerItinerary) {
		return "", fmt.Errorf("%w: synthesis response is missing section markers", contractx.ErrFormatViolation)
	}
	return itinerary, nil
}

func buildTaskInput(req contractx.SynthesisRequest) string {
	var b strings.Builder
	b.WriteString("Generate the complete travel itinerary for this trip.\n\n")
	b.WriteString("**Trip Details:**\n")
	fmt.Fprintf(&b, "- **Destination:** %s\n", req.Destination)
	fmt.Fprintf(&b, "- **Duration:** %d days\n", req.Days)
	fmt.Fprintf(&b, "- **Departure City:** %s\n", req.DepartureCity)
	fmt.Fprintf(&b, "- **Budget:** %s\n\n", req.BudgetTier)
	b.WriteString("**Available Data (for context):**\n")
	fmt.Fprintf(&b, "- **Flight Options:** %s\n", req.FlightOptions)
	fmt.Fprintf(&b, "- **Hotel Options:** %s\n\n", req.HotelOptions)
	fmt.Fprintf(&b, "The Daily Itinerary section must cover every day from Day 1 to Day %d inclusive.", req.Days)
	return b.String()
}
