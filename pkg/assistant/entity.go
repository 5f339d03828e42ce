package assistant

import (
	"context"
	"errors"

	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/language"
)

var ErrEmptyQuery = errors.New("empty query")

// Answer is the outcome of one legal question.
type Answer struct {
	Text         string        `json:"text"`
	Language     language.Code `json:"language"`
	Sources      []string      `json:"sources"`
	UsedFallback bool          `json:"used_fallback"`
}

// Retriever finds passages relevant to a query.
type Retriever interface {
	Retrieve(query string, lang language.Code, topK int) []knowledge.Match
}

// UseCase answers legal questions.
type UseCase interface {
	Answer(ctx context.Context, query string) (Answer, error)
}
