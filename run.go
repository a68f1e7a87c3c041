package explain

import (
	"context"
	"fmt"
	"io"

	"github.com/bitop-dev/explain/gemini"
)

const (
	DefaultModel  = "gemini-2.5-flash"
	DefaultPrompt = "Explain how AI works in a few words"
)

// Run sends DefaultPrompt to DefaultModel using the credential in cfg and
// writes the reply to out. Nothing is written when the call fails.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	client := gemini.NewClient(gemini.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	return GenerateAndPrint(ctx, client.Chat(DefaultModel), DefaultPrompt, out)
}

// GenerateAndPrint writes the model's reply to prompt followed by a newline.
func GenerateAndPrint(ctx context.Context, model ModelRef, prompt string, out io.Writer) error {
	resp, err := GenerateText(ctx, GenerateTextRequest{
		Model:  model,
		Prompt: prompt,
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, resp.Text); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
