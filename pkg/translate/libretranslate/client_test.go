package libretranslate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

func TestTranslatePostsForm(t *testing.T) {
	var form map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		form = map[string]string{
			"q":      r.PostForm.Get("q"),
			"source": r.PostForm.Get("source"),
			"target": r.PostForm.Get("target"),
			"format": r.PostForm.Get("format"),
		}
		_, _ = w.Write([]byte(`{"translatedText":"What is the procedure for divorce?"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL, "").Translate(context.Background(), "तलाक की प्रक्रिया क्या है?", language.Hindi, language.English)

	require.NoError(t, err)
	assert.Equal(t, "What is the procedure for divorce?", got)
	assert.Equal(t, map[string]string{
		"q": "तलाक की प्रक्रिया क्या है?", "source": "hi", "target": "en", "format": "text",
	}, form)
}

func TestTranslateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Visit https://portal.libretranslate.com to get an API key"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "").Translate(context.Background(), "x", language.English, language.Hindi)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libretranslate http 403")
}

func TestNewDefaults(t *testing.T) {
	c := New("", "")
	assert.Equal(t, DefaultURL, c.URL)
}
