package explain

import (
	"fmt"

	"github.com/bitop-dev/explain/gemini"
	"github.com/bitop-dev/explain/internal/provider"
)

func toProviderRequest(req GenerateTextRequest) (provider.Request, error) {
	if req.Model == nil {
		return provider.Request{}, fmt.Errorf("model is required")
	}
	if req.Model.Name() == "" {
		return provider.Request{}, fmt.Errorf("model name is required")
	}
	if req.Prompt == "" {
		return provider.Request{}, fmt.Errorf("prompt is required")
	}

	var msgs []provider.Message
	if req.System != "" {
		msgs = append(msgs, textMessage(provider.RoleSystem, req.System))
	}
	msgs = append(msgs, textMessage(provider.RoleUser, req.Prompt))

	var providerData any
	if c, ok := geminiClientFromModel(req.Model); ok {
		providerData = c
	}

	return provider.Request{
		Model:        req.Model.Name(),
		Messages:     msgs,
		ProviderData: providerData,
	}, nil
}

func textMessage(role provider.Role, text string) provider.Message {
	return provider.Message{
		Role:    role,
		Content: []provider.ContentPart{provider.TextPart{Text: text}},
	}
}

type geminiClientModel interface {
	Client() *gemini.Client
}

func geminiClientFromModel(m ModelRef) (*gemini.Client, bool) {
	v, ok := m.(geminiClientModel)
	if !ok || v.Client() == nil {
		return nil, false
	}
	return v.Client(), true
}

func fromProviderResponse(resp provider.Response) *GenerateTextResponse {
	return &GenerateTextResponse{
		Text: resp.Message.Text(),
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		FinishReason: FinishReason(resp.FinishReason),
	}
}
