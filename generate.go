package explain

import (
	"context"
	"fmt"

	"github.com/bitop-dev/explain/internal/provider"
	"github.com/charmbracelet/log"
)

// GenerateText sends a single prompt to the model and returns its text. A
// response that carries no text is reported as an empty_response error.
func GenerateText(ctx context.Context, req GenerateTextRequest) (*GenerateTextResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	p, err := providerForModel(req.Model)
	if err != nil {
		return nil, err
	}

	preq, err := toProviderRequest(req)
	if err != nil {
		return nil, err
	}

	log.Debug("sending generate request", "provider", req.Model.Provider(), "model", preq.Model)
	resp, err := p.Generate(ctx, preq)
	if err != nil {
		return nil, mapProviderError(req.Model, err)
	}

	out := fromProviderResponse(resp)
	log.Debug("received response",
		"finish_reason", out.FinishReason,
		"prompt_tokens", out.Usage.PromptTokens,
		"completion_tokens", out.Usage.CompletionTokens,
	)
	if out.Text == "" {
		return nil, &Error{
			Provider: req.Model.Provider(),
			Model:    req.Model.Name(),
			Code:     CodeEmptyResponse,
			Message:  "response contained no text",
		}
	}
	return out, nil
}

func providerForModel(m ModelRef) (provider.Provider, error) {
	if m == nil {
		return nil, fmt.Errorf("model is required")
	}
	name := m.Provider()
	if name == "" {
		return nil, fmt.Errorf("model provider is required")
	}
	return provider.Lookup(name)
}
