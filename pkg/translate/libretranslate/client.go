// Package libretranslate is a client for the LibreTranslate HTTP API.
package libretranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

const DefaultURL = "https://libretranslate.com/translate"

type Client struct {
	URL    string
	APIKey string
	httpDo *http.Client
}

func New(endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	return &Client{
		URL:    endpoint,
		APIKey: apiKey,
		httpDo: &http.Client{Timeout: 5 * time.Second},
	}
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func (c *Client) Translate(ctx context.Context, text string, from, to language.Code) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("source", from.String())
	form.Set("target", to.String())
	form.Set("format", "text")
	if c.APIKey != "" {
		form.Set("api_key", c.APIKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate request: %w", err)
	}
	defer resp.Body.Close()

	var out translateResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("libretranslate http %d: %s", resp.StatusCode, out.Error)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode libretranslate response: %w", decodeErr)
	}
	return out.TranslatedText, nil
}
