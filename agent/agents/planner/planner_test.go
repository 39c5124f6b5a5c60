package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "tripdesigner/agent/contract"
	statex "tripdesigner/agent/state"
)

type fakeChatModel struct {
	responses []*schema.Message
	err       error
	idx       int
	prompts   [][]*schema.Message
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	f.prompts = append(f.prompts, input)
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeChatModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

func validItinerary(days int) string {
	var b strings.Builder
	b.WriteString("### Trip Summary\nAn exciting trip.\n\n### Recommendations\n* **Flight:** pick one\n* **Hotel:** pick one\n\n### Daily Itinerary\n")
	for d := 1; d <= days; d++ {
		fmt.Fprintf(&b, "**Day %d:**\n* **Morning:** a\n* **Afternoon:** b\n* **Evening:** c\n", d)
	}
	return b.String()
}

func testRequest() contractx.SynthesisRequest {
	return contractx.SynthesisRequest{
		Destination:   "Paris",
		Days:          3,
		DepartureCity: "Delhi",
		BudgetTier:    statex.TierLuxury,
		FlightOptions: "**✈️ Flight Options:**\n- **Air India**: ₹45,230",
		HotelOptions:  "**🏨 Hotel Options:**\n- **Grand Palace**: ₹42,000/night",
	}
}

func TestSynthesizeSuccess(t *testing.T) {
	t.Parallel()

	itinerary := validItinerary(3)
	fake := &fakeChatModel{responses: []*schema.Message{{Content: itinerary}}}

	p, err := New(context.Background(), fake, "planner prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := p.Synthesize(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if out != strings.TrimSpace(itinerary) {
		t.Fatalf("unexpected itinerary:\n%s", out)
	}
	if strings.Count(out, "**Morning:**") != 3 {
		t.Fatalf("expected 3 morning entries, got %d", strings.Count(out, "**Morning:**"))
	}
}

func TestSynthesizeEmbedsTripDetails(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{responses: []*schema.Message{{Content: validItinerary(3)}}}
	p, err := New(context.Background(), fake, "planner prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := p.Synthesize(context.Background(), testRequest()); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(fake.prompts) != 1 {
		t.Fatalf("model invoked %d times, want exactly once", len(fake.prompts))
	}

	var user string
	for _, msg := range fake.prompts[0] {
		if msg.Role == schema.User {
			user = msg.Content
		}
	}
	for _, want := range []string{"Paris", "Delhi", "luxury", "3 days", "₹45,230", "Day 1 to Day 3"} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q:\n%s", want, user)
		}
	}
}

func TestSynthesizeMissingMarkersFails(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{responses: []*schema.Message{
		{Content: "Sorry, I cannot plan this trip right now."},
	}}
	p, err := New(context.Background(), fake, "planner prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = p.Synthesize(context.Background(), testRequest())
	if !errors.Is(err, contractx.ErrFormatViolation) {
		t.Fatalf("Synthesize() error = %v, want ErrFormatViolation", err)
	}
}

func TestSynthesizeModelErrorWrapped(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{err: errors.New("upstream 503")}
	p, err := New(context.Background(), fake, "planner prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = p.Synthesize(context.Background(), testRequest())
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("Synthesize() error = %v, want ErrModelInvoke", err)
	}
}

func TestSynthesizeValidatesRequest(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{responses: []*schema.Message{{Content: validItinerary(1)}}}
	p, err := New(context.Background(), fake, "planner prompt")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req := testRequest()
	req.Days = 0
	if _, err := p.Synthesize(context.Background(), req); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Synthesize() error = %v, want ErrValidation", err)
	}

	req = testRequest()
	req.Destination = " "
	if _, err := p.Synthesize(context.Background(), req); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("Synthesize() error = %v, want ErrValidation", err)
	}
}

func TestNewRequiresSystemPrompt(t *testing.T) {
	t.Parallel()

	fake := &fakeChatModel{}
	if _, err := New(context.Background(), fake, "  "); !errors.Is(err, contractx.ErrPromptMissing) {
		t.Fatalf("New() error = %v, want ErrPromptMissing", err)
	}
}
