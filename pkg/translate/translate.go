// Package translate moves text between English and Hindi.
package translate

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

// Translator converts text from one language to another.
type Translator interface {
	Translate(ctx context.Context, text string, from, to language.Code) (string, error)
}

type glossaryFallback struct {
	next Translator
	log  zerolog.Logger
}

// WithGlossary wraps next so that any failure falls back to annotating
// known legal terms. The result never fails. A nil next means glossary only.
func WithGlossary(next Translator, log zerolog.Logger) Translator {
	return &glossaryFallback{next: next, log: log}
}

func (g *glossaryFallback) Translate(ctx context.Context, text string, from, to language.Code) (string, error) {
	if from == to {
		return text, nil
	}
	if g.next != nil {
		out, err := g.next.Translate(ctx, text, from, to)
		if err == nil && out != "" {
			return out, nil
		}
		g.log.Warn().Err(err).Str("from", from.String()).Str("to", to.String()).Msg("translation failed, using glossary")
	}
	return language.Gloss(text, from, to), nil
}
