// Package agents wires the language-model collaborators behind the Registry
// contract.
package agents

import (
	"context"
	"errors"
	"fmt"

	"tripdesigner/agent/agents/planner"
	"tripdesigner/agent/agents/reviser"
	contractx "tripdesigner/agent/contract"
	promptx "tripdesigner/agent/prompt"
	groqx "tripdesigner/pkg/groq"
)

type registryImpl struct {
	synthesizer contractx.Synthesizer
	reviser     contractx.Reviser
}

func (r *registryImpl) Synthesizer() contractx.Synthesizer {
	return r.synthesizer
}

func (r *registryImpl) Reviser() contractx.Reviser {
	return r.reviser
}

// NewRegistry builds the synthesizer and reviser from one Groq model config.
func NewRegistry(ctx context.Context, cfg groqx.Config) (contractx.Registry, error) {
	prompts := promptx.LoadPromptSet()

	chatModel, err := cfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create planner model: %v", contractx.ErrModelInvoke, err)
	}

	synth, err := planner.New(ctx, chatModel, prompts.Planner)
	if err != nil {
		return nil, err
	}

	sdkClient := groqx.NewClient(cfg)
	if sdkClient == nil {
		return nil, errors.New("groq api key is required")
	}
	rev, err := reviser.New(sdkClient, cfg.Model, prompts.Reviser)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		synthesizer: synth,
		reviser:     rev,
	}, nil
}
