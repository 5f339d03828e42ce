// Package legalquery is the client side of the LegaLuna chat API: one POST
// per question, every outcome folded into a Result.
package legalquery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// APIKeyHeader carries the static client key.
const APIKeyHeader = "X-API-Key"

// Client posts questions to the chat endpoint. It never retries and sets no
// timeout of its own; cancellation comes only from the caller's context.
type Client struct {
	endpoint string
	apiKey   string
	httpDo   *http.Client
	log      zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpDo = hc
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(endpoint, apiKey string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpDo:   &http.Client{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL queries are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Response *string `json:"response"`
}

// Query sends text and returns Success with the answer, or Failure with
// ReasonTransport, an http-status reason, or ReasonMalformed.
func (c *Client) Query(ctx context.Context, text string) Result {
	data, err := json.Marshal(queryRequest{Query: text})
	if err != nil {
		return c.fail(ReasonTransport, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return c.fail(ReasonTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return c.fail(ReasonTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return c.fail(HTTPStatusReason(resp.StatusCode), nil)
	}
	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return c.fail(ReasonMalformed, err)
	}
	if out.Response == nil {
		return c.fail(ReasonMalformed, nil)
	}
	return Success{Answer: *out.Response}
}

func (c *Client) fail(reason Reason, err error) Failure {
	ev := c.log.Warn().Str("endpoint", c.endpoint).Str("reason", string(reason))
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg("legal query failed")
	return Failure{Reason: reason}
}
