package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

type captured struct {
	called   bool
	endpoint string
	apiKey   string
	lang     language.Code
}

func execute(t *testing.T, args ...string) (captured, error) {
	t.Helper()
	var got captured
	cmd := newRootCmd(func(_ context.Context, endpoint, apiKey string, lang language.Code) error {
		got = captured{called: true, endpoint: endpoint, apiKey: apiKey, lang: lang}
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return got, cmd.Execute()
}

func TestRootCmdDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := execute(t)
	require.NoError(t, err)
	assert.True(t, got.called)
	assert.Equal(t, "http://localhost:5000/api/chat", got.endpoint)
	assert.Equal(t, "default-api-key-for-development", got.apiKey)
	assert.Equal(t, language.English, got.lang)
}

func TestRootCmdFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEGALUNA_ENDPOINT", "http://env.example/api/chat")
	t.Setenv("LEGALUNA_API_KEY", "env-key")
	t.Setenv("LEGALUNA_LANG", "hi")

	got, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/api/chat", got.endpoint)
	assert.Equal(t, "env-key", got.apiKey)
	assert.Equal(t, language.Hindi, got.lang)

	got, err = execute(t, "--endpoint", "http://flag.example/api/chat", "--api-key", "flag-key", "--lang", "en")
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example/api/chat", got.endpoint)
	assert.Equal(t, "flag-key", got.apiKey)
	assert.Equal(t, language.English, got.lang)
}

func TestRootCmdResolvesNgrokPage(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := execute(t, "--page-url", "https://abc123.ngrok-free.app/widget")
	require.NoError(t, err)
	assert.Equal(t, "https://abc123.ngrok-free.app/api/chat", got.endpoint)

	got, err = execute(t, "--endpoint", "http://api.example/api/chat", "--page-url", "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "http://api.example/api/chat", got.endpoint)
}

func TestRootCmdRejectsUnknownLanguage(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := execute(t, "--lang", "fr")
	require.Error(t, err)
	assert.False(t, got.called)
}

func TestRootCmdIgnoresServerSettings(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CACHE_SIZE", "-1")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	got, err := execute(t)
	require.NoError(t, err)
	assert.True(t, got.called)
}
