package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/llm"
)

func TestAskSendsChatCompletion(t *testing.T) {
	var got chatCompletionsRequest
	var auth, title string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		title = r.Header.Get("X-Title")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"Visit the police station."}}]}`))
	}))
	defer srv.Close()

	c := New("key", srv.URL, "", "LegaLuna", "")
	answer, err := c.Ask(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "Visit the police station.", answer)
	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "LegaLuna", title)
	assert.Equal(t, defaultModel, got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, message{Role: "system", Content: "system"}, got.Messages[0])
	assert.Equal(t, message{Role: "user", Content: "user"}, got.Messages[1])
}

func TestAskErrors(t *testing.T) {
	_, err := New("", "http://unused", "", "", "").Ask(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}))
	defer srv.Close()
	_, err = New("key", srv.URL, "m", "", "").Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openrouter http 429")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()
	_, err = New("key", empty.URL, "m", "", "").Ask(context.Background(), "s", "u")
	assert.EqualError(t, err, "no choices returned by model")
}
