package explain

import "time"

type ModelRef interface {
	Provider() string
	Name() string
}

type GenerateTextRequest struct {
	Model ModelRef

	Prompt string
	// System is an optional instruction sent ahead of the prompt.
	System string

	// Timeout bounds the call when positive.
	Timeout time.Duration
}

type GenerateTextResponse struct {
	Text string

	Usage        Usage
	FinishReason FinishReason
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type FinishReason string
