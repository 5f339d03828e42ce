// Package assistant answers legal questions by retrieving passages from the
// knowledge base and asking a chat model to explain them.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/PJRenu/LegaLuna/pkg/cache"
	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/llm"
	"github.com/PJRenu/LegaLuna/pkg/translate"
)

const topK = 3

type service struct {
	retriever  Retriever
	model      llm.ChatModel
	translator translate.Translator
	cache      cache.Cache
	log        zerolog.Logger
}

// NewService wires the answering pipeline. model may be nil, in which case
// answers are built from the retrieved passages. A nil cache disables caching.
func NewService(retriever Retriever, model llm.ChatModel, translator translate.Translator, c cache.Cache, log zerolog.Logger) UseCase {
	if c == nil {
		c = cache.Nop{}
	}
	if translator == nil {
		translator = translate.WithGlossary(nil, log)
	}
	return &service{retriever: retriever, model: model, translator: translator, cache: c, log: log}
}

func (s *service) Answer(ctx context.Context, query string) (Answer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Answer{}, ErrEmptyQuery
	}

	lang := language.Detect(query)
	retrievalQuery := query
	if lang == language.Hindi {
		query = language.NormalizeHindi(query)
		english, err := s.translator.Translate(ctx, query, language.Hindi, language.English)
		if err != nil {
			s.log.Warn().Err(err).Msg("query translation failed")
			english = ""
		}
		// Hindi passages match the original wording, glossed or translated
		// terms widen the match.
		retrievalQuery = query + " " + english
	}
	log := s.log.With().Str("language", lang.String()).Logger()

	key := cache.Key(lang, query)
	if cached, ok := s.cached(ctx, key); ok {
		log.Debug().Msg("answer served from cache")
		return cached, nil
	}

	matches := s.retriever.Retrieve(retrievalQuery, lang, topK)
	log.Info().Int("passages", len(matches)).Msg("retrieved passages")

	var p prompt
	if len(matches) == 0 {
		p = fallbackPrompt(lang, query)
	} else {
		passages := make([]string, 0, len(matches))
		for _, m := range matches {
			passages = append(passages, m.Document.Content)
		}
		p = ragPrompt(lang, passages, query)
	}

	ans := Answer{Language: lang, Sources: sources(matches), UsedFallback: len(matches) == 0}
	text, err := s.ask(ctx, p)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Answer{}, ctxErr
		}
		log.Warn().Err(err).Msg("model unavailable, answering from passages")
		ans.Text = extractiveAnswer(lang, matches)
		ans.UsedFallback = true
		// Degraded answers are not cached so the model gets another chance.
		return ans, nil
	}

	if lang == language.Hindi && language.Detect(text) == language.English {
		translated, terr := s.translator.Translate(ctx, text, language.English, language.Hindi)
		if terr == nil {
			text = translated
		}
	}
	ans.Text = text
	log.Info().Int("length", len(text)).Msg("generated answer")

	s.store(ctx, key, ans)
	return ans, nil
}

func (s *service) ask(ctx context.Context, p prompt) (string, error) {
	if s.model == nil {
		return "", llm.ErrNotConfigured
	}
	text, err := s.model.Ask(ctx, p.system, p.user)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("model returned empty answer")
	}
	return text, nil
}

func (s *service) cached(ctx context.Context, key string) (Answer, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return Answer{}, false
	}
	var ans Answer
	if err := json.Unmarshal([]byte(raw), &ans); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt cache entry")
		return Answer{}, false
	}
	return ans, true
}

func (s *service) store(ctx context.Context, key string, ans Answer) {
	raw, err := json.Marshal(ans)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, string(raw))
}

func sources(matches []knowledge.Match) []string {
	out := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Document.Source]; ok {
			continue
		}
		seen[m.Document.Source] = struct{}{}
		out = append(out, m.Document.Source)
	}
	return out
}
