package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Fallback asks the primary model first and then each fallback in order
// until one succeeds.
type Fallback struct {
	models []ChatModel
	log    zerolog.Logger
}

func NewFallback(log zerolog.Logger, primary ChatModel, fallbacks ...ChatModel) *Fallback {
	return &Fallback{models: append([]ChatModel{primary}, fallbacks...), log: log}
}

func (f *Fallback) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error
	for i, m := range f.models {
		answer, err := m.Ask(ctx, systemPrompt, userPrompt)
		if err == nil {
			if i > 0 {
				f.log.Info().Int("fallback", i).Str("model", fmt.Sprintf("%T", m)).Msg("fallback model succeeded")
			}
			return answer, nil
		}
		f.log.Warn().Err(err).Int("attempt", i+1).Str("model", fmt.Sprintf("%T", m)).Msg("model failed")
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("all models failed, last error: %w", lastErr)
}
