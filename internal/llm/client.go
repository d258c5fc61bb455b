package llm

import "context"

// Response carries the generated answer plus usage numbers for logging.
type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client is a single-shot completion backend: one system instruction, one
// user prompt, one generated answer.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (Response, error)
}
