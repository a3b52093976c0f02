package quip

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Generate asks Gemini for a fresh quip about the computed loss. Any
// failure (no credentials, network, empty answer) falls back to the static
// pool: the quip is decoration, never a reason to fail a run.
func Generate(ctx context.Context, lossPct float64) string {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return Pick(lossPct)
	}
	chat, err := client.Chats.Create(ctx, model, nil, nil)
	if err != nil {
		return Pick(lossPct)
	}
	prompt := fmt.Sprintf(
		"Write one short witty one-liner about inflation for someone whose purchasing power dropped by %.1f%%. No preamble, no quotes.",
		lossPct)
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Pick(lossPct)
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return Pick(lossPct)
	}
	return text
}
