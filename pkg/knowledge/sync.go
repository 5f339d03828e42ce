package knowledge

import (
	"context"
	"fmt"
)

// Sync upserts docs into store and returns everything the store holds, so
// passages added directly to the store are indexed too.
func Sync(ctx context.Context, store Store, docs []Document) ([]Document, error) {
	if err := store.Upsert(ctx, docs); err != nil {
		return nil, fmt.Errorf("upsert documents: %w", err)
	}
	all, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrNotFound
	}
	return all, nil
}
