package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	publicgemini "github.com/bitop-dev/explain/gemini"
	"github.com/bitop-dev/explain/internal/provider"
	"google.golang.org/genai"
)

type Provider struct{}

func (p *Provider) Generate(ctx context.Context, req provider.Request) (provider.Response, error) {
	cfg, err := configFrom(req.ProviderData)
	if err != nil {
		return provider.Response{}, err
	}

	client, err := genai.NewClient(ctx, clientConfig(cfg))
	if err != nil {
		if ctx.Err() != nil {
			return provider.Response{}, classifyError(ctx, err)
		}
		return provider.Response{}, newError(provider.CodeConfig, err)
	}

	contents, genCfg, err := buildContents(req.Messages)
	if err != nil {
		return provider.Response{}, newError(provider.CodeRequest, err)
	}

	resp, err := client.Models.GenerateContent(ctx, req.Model, contents, genCfg)
	if err != nil {
		return provider.Response{}, classifyError(ctx, err)
	}
	return fromGenerateContentResponse(resp)
}

func configFrom(providerData any) (publicgemini.Config, error) {
	c, ok := providerData.(*publicgemini.Client)
	if !ok || c == nil {
		err := fmt.Errorf("gemini provider requires a client-bound model ref")
		return publicgemini.Config{}, newError(provider.CodeConfig, err)
	}
	cfg := c.Config()
	if strings.TrimSpace(cfg.APIKey) == "" {
		return publicgemini.Config{}, &provider.Error{
			Provider: publicgemini.ProviderName,
			Code:     provider.CodeMissingCredential,
			Message:  "gemini API key is required",
		}
	}
	return cfg, nil
}

func clientConfig(cfg publicgemini.Config) *genai.ClientConfig {
	h := make(http.Header)
	for k, v := range cfg.Headers {
		h.Set(k, v)
	}
	return &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
			Headers:    h,
		},
	}
}

// buildContents maps session messages onto Gemini turns. System messages are
// folded into the system instruction; the returned config is nil when there
// are none.
func buildContents(msgs []provider.Message) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	var system []*genai.Part
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		parts := toParts(m.Content)
		switch m.Role {
		case provider.RoleSystem:
			system = append(system, parts...)
		case provider.RoleUser:
			contents = append(contents, &genai.Content{Role: string(genai.RoleUser), Parts: parts})
		case provider.RoleAssistant:
			contents = append(contents, &genai.Content{Role: string(genai.RoleModel), Parts: parts})
		default:
			return nil, nil, fmt.Errorf("unsupported role %q", m.Role)
		}
	}
	if len(contents) == 0 {
		return nil, nil, fmt.Errorf("at least one user message is required")
	}

	if len(system) == 0 {
		return contents, nil, nil
	}
	return contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: system},
	}, nil
}

func toParts(content []provider.ContentPart) []*genai.Part {
	parts := make([]*genai.Part, 0, len(content))
	for _, c := range content {
		if t, ok := c.(provider.TextPart); ok {
			parts = append(parts, &genai.Part{Text: t.Text})
		}
	}
	return parts
}

func fromGenerateContentResponse(resp *genai.GenerateContentResponse) (provider.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		msg := "response has no candidates"
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			msg = fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return provider.Response{}, &provider.Error{
			Provider: publicgemini.ProviderName,
			Code:     provider.CodeEmptyResponse,
			Message:  msg,
		}
	}

	c := resp.Candidates[0]
	msg := provider.Message{Role: provider.RoleAssistant}
	if c.Content != nil {
		for _, part := range c.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			msg.Content = append(msg.Content, provider.TextPart{Text: part.Text})
		}
	}

	out := provider.Response{
		Message:      msg,
		FinishReason: provider.FinishReason(c.FinishReason),
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = provider.Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, nil
}

func newError(code string, err error) *provider.Error {
	return provider.NewError(publicgemini.ProviderName, code, err)
}

func classifyError(ctx context.Context, err error) *provider.Error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Join(ctxErr, err)
	}

	switch {
	case errors.Is(err, context.Canceled):
		return newError(provider.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		e := newError(provider.CodeTimeout, err)
		e.Retryable = true
		return e
	}

	if apiErr, ok := asAPIError(err); ok {
		code, retryable := classifyStatus(apiErr)
		return &provider.Error{
			Provider:  publicgemini.ProviderName,
			Code:      code,
			Status:    apiErr.Code,
			Message:   apiErr.Message,
			Retryable: retryable,
			Cause:     err,
		}
	}

	var ne net.Error
	if errors.As(err, &ne) {
		e := newError(provider.CodeNetwork, err)
		e.Retryable = ne.Timeout()
		return e
	}
	return newError(provider.CodeRequest, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}

func classifyStatus(e genai.APIError) (code string, retryable bool) {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return provider.CodeUnauthorized, false
	case e.Code == http.StatusBadRequest && mentionsAPIKey(e):
		// Gemini answers an invalid key with 400 API_KEY_INVALID.
		return provider.CodeUnauthorized, false
	case e.Code == http.StatusTooManyRequests:
		return provider.CodeRateLimited, true
	case e.Code >= 500 && e.Code <= 599:
		return provider.CodeService, true
	default:
		return provider.CodeService, false
	}
}

func mentionsAPIKey(e genai.APIError) bool {
	if strings.Contains(strings.ToLower(e.Message), "api key") {
		return true
	}
	for _, d := range e.Details {
		if reason, _ := d["reason"].(string); reason == "API_KEY_INVALID" {
			return true
		}
	}
	return false
}
