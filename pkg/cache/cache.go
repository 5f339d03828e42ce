// Package cache stores generated answers so repeated questions skip the
// model round trip.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/nlp"
)

// Cache is a string key/value store with a fixed TTL. Implementations
// report backend errors as misses.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// Key derives the cache key of a question: language plus a hash of the
// normalized text, so case and punctuation do not split entries.
func Key(lang language.Code, query string) string {
	sum := sha256.Sum256([]byte(nlp.NormalizeText(query)))
	return lang.String() + ":" + hex.EncodeToString(sum[:])
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool) { return "", false }
func (Nop) Set(context.Context, string, string) {}
