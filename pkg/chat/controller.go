// Package chat holds the conversation state of the LegaLuna widget and
// runs one request/response cycle per user submission.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/legalquery"
)

var (
	// ErrBusy is returned by Submit while a previous question is unanswered.
	ErrBusy = errors.New("a question is already awaiting an answer")
	// ErrUnsupportedLanguage is returned by SetLanguage for unknown codes.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Querier answers one question. *legalquery.Client implements it.
type Querier interface {
	Query(ctx context.Context, text string) legalquery.Result
}

// Controller owns the transcript, the active language and the single
// pending indicator.
type Controller struct {
	client Querier
	view   View
	log    zerolog.Logger
	now    func() time.Time

	mu         sync.Mutex
	lang       language.Code
	transcript []Turn
	pending    *PendingIndicator
	stats      Stats
}

type Option func(*Controller)

// WithLanguage sets the initial language. Unsupported codes are ignored.
func WithLanguage(code language.Code) Option {
	return func(c *Controller) {
		if code.Valid() {
			c.lang = code
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock overrides the timestamp source for turns.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New builds a controller and renders the initial presentation.
func New(client Querier, view View, opts ...Option) *Controller {
	c := &Controller{
		client: client,
		view:   view,
		log:    zerolog.Nop(),
		now:    time.Now,
		lang:   language.English,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.view.Render(PresentationFor(c.lang))
	return c
}

// Submit sends raw as a question. Blank input is ignored. The controller
// lock is released while the query is outstanding, so SetLanguage and the
// read accessors stay usable; a second Submit in that window gets ErrBusy.
func (c *Controller) Submit(ctx context.Context, raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.pending != nil {
		c.mu.Unlock()
		return ErrBusy
	}
	c.view.AppendTurn(c.appendLocked(RoleUser, text))
	c.view.ClearInput()
	indicator := PendingIndicator{ID: uuid.New(), Label: PresentationFor(c.lang).PendingLabel}
	c.pending = &indicator
	c.stats.Submitted++
	c.stats.PendingCreated++
	c.view.ShowPending(indicator)
	c.mu.Unlock()

	result := c.client.Query(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	c.stats.PendingRemoved++
	c.view.RemovePending(indicator)

	var reply string
	switch r := result.(type) {
	case legalquery.Success:
		reply = r.Answer
	case legalquery.Failure:
		c.log.Warn().Str("reason", string(r.Reason)).Str("language", c.lang.String()).Msg("answer unavailable")
		reply = PresentationFor(c.lang).ErrorText
	default:
		c.log.Error().Msgf("unexpected query result %T", result)
		reply = PresentationFor(c.lang).ErrorText
	}
	c.view.AppendTurn(c.appendLocked(RoleBot, reply))
	return nil
}

// SelectExample behaves as if text had been typed and submitted.
func (c *Controller) SelectExample(ctx context.Context, text string) error {
	return c.Submit(ctx, text)
}

// SetLanguage switches the presentation strings. Existing turns are kept
// as they were rendered.
func (c *Controller) SetLanguage(code language.Code) error {
	if !code.Valid() {
		return ErrUnsupportedLanguage
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lang = code
	c.view.Render(PresentationFor(code))
	return nil
}

func (c *Controller) Language() language.Code {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

func (c *Controller) Presentation() Presentation {
	return PresentationFor(c.Language())
}

// Example returns the i-th (zero-based) example prompt of the active language.
func (c *Controller) Example(i int) (string, bool) {
	examples := c.Presentation().Examples
	if i < 0 || i >= len(examples) {
		return "", false
	}
	return examples[i], true
}

// Transcript returns a copy of the turns in order.
func (c *Controller) Transcript() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Turn(nil), c.transcript...)
}

// Pending returns the live indicator, if any.
func (c *Controller) Pending() (PendingIndicator, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return PendingIndicator{}, false
	}
	return *c.pending, true
}

func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Controller) appendLocked(role Role, text string) Turn {
	t := Turn{ID: uuid.New(), Role: role, Text: text, At: c.now()}
	c.transcript = append(c.transcript, t)
	return t
}
