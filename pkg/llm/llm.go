package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by providers missing credentials.
var ErrNotConfigured = errors.New("llm provider is not configured")

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
