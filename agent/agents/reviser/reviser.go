// Package reviser applies one free-text edit instruction to an existing
// itinerary through the chat completions API.
package reviser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "tripdesigner/agent/contract"
)

// leadingToken is the prefix a revised document must start with to be
// accepted. Acceptance is purely this case-insensitive prefix check; there is
// no diffing of the targeted block.
const leadingToken = "### trip summary"

type Reviser struct {
	client       *openaisdk.Client
	model        string
	systemPrompt string
}

var _ contractx.Reviser = (*Reviser)(nil)

func New(client *openaisdk.Client, model string, systemPrompt string) (*Reviser, error) {
	if client == nil {
		return nil, errors.New("reviser: sdk client is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("reviser: model name is required")
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: reviser system prompt", contractx.ErrPromptMissing)
	}
	return &Reviser{
		client:       client,
		model:        strings.TrimSpace(model),
		systemPrompt: strings.TrimSpace(systemPrompt),
	}, nil
}

func (r *Reviser) Revise(ctx context.Context, itinerary string, instruction string) (string, error) {
	if strings.TrimSpace(itinerary) == "" {
		return "", fmt.Errorf("%w: current itinerary is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(instruction) == "" {
		return "", fmt.Errorf("%w: revision instruction is empty", contractx.ErrValidation)
	}

	resp, err := r.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(r.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(r.systemPrompt),
			openaisdk.UserMessage(buildEditInput(itinerary, instruction)),
		},
		Temperature: openaisdk.Float(0.3),
	})
	if err != nil {
		return "", fmt.Errorf("%w: revision invoke: %v", contractx.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: revision response has no choices", contractx.ErrFormatViolation)
	}

	revised := strings.TrimSpace(resp.Choices[0].Message.Content)
	if !strings.HasPrefix(strings.ToLower(revised), leadingToken) {
		return "", fmt.Errorf("%w: revised document does not start with the itinerary header", contractx.ErrFormatViolation)
	}
	return revised, nil
}

func buildEditInput(itinerary, instruction string) string {
	var b strings.Builder
	b.WriteString("**Current Itinerary:**\n\n")
	b.WriteString(itinerary)
	b.WriteString("\n\n**Change Request:** ")
	b.WriteString(strings.TrimSpace(instruction))
	return b.String()
}
