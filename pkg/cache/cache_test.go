package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

func TestKeyNormalizesQuery(t *testing.T) {
	assert.Equal(t, Key(language.English, "How do I file an FIR?"), Key(language.English, "  how do i file an fir "))
	assert.NotEqual(t, Key(language.English, "fir"), Key(language.Hindi, "fir"))
}

func TestLRUExpiry(t *testing.T) {
	c, err := NewLRU(2, time.Minute)
	require.NoError(t, err)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	c.Set(ctx, "a", "1")
	got, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "1", got)

	now = now.Add(time.Minute)
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestLRUEvictsOldest(t *testing.T) {
	c, err := NewLRU(2, time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")
	c.Set(ctx, "c", "3")

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
}

func TestNewLRURejectsBadSize(t *testing.T) {
	_, err := NewLRU(0, time.Minute)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	c.Set(context.Background(), "k", "v")
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}
