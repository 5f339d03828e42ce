// Package terminal renders the chat widget on a line-oriented terminal.
package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/PJRenu/LegaLuna/pkg/chat"
)

const clearLine = "\r\033[2K"

// View writes the transcript to out. The pending indicator is drawn on the
// last line without a newline; every other write erases it first and draws
// it again afterwards, so it is only ever visible on that line.
type View struct {
	mu        sync.Mutex
	out       io.Writer
	setPrompt func(string)
	botName   string
	userName  string
	pending   string
	showing   bool
}

type Option func(*View)

// WithPrompt registers a hook that receives the input placeholder whenever
// the language changes, e.g. a readline SetPrompt.
func WithPrompt(set func(string)) Option {
	return func(v *View) { v.setPrompt = set }
}

// WithNames overrides the speaker labels.
func WithNames(user, bot string) Option {
	return func(v *View) {
		v.userName = user
		v.botName = bot
	}
}

func New(out io.Writer, opts ...Option) *View {
	v := &View{out: out, userName: "You", botName: "LegaLuna"}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) AppendTurn(t chat.Turn) {
	v.mu.Lock()
	defer v.mu.Unlock()
	name := v.botName
	if t.Role == chat.RoleUser {
		name = v.userName
	}
	v.writeLocked(fmt.Sprintf("%s: %s\n", name, t.Text))
}

func (v *View) ShowPending(p chat.PendingIndicator) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = p.Label
	v.showing = true
	fmt.Fprint(v.out, p.Label)
}

func (v *View) RemovePending(chat.PendingIndicator) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.showing {
		return
	}
	v.showing = false
	fmt.Fprint(v.out, clearLine)
}

// ClearInput is a no-op: the line editor hands over the line once read.
func (v *View) ClearInput() {}

func (v *View) Render(p chat.Presentation) {
	v.mu.Lock()
	defer v.mu.Unlock()
	block := fmt.Sprintf("[%s] %s (%s: Enter)\n", p.Language, p.Placeholder, p.SendLabel)
	for i, ex := range p.Examples {
		block += fmt.Sprintf("  /%d %s\n", i+1, ex)
	}
	v.writeLocked(block)
	if v.setPrompt != nil {
		v.setPrompt(p.Placeholder + " ")
	}
}

// Write prints free-form output such as session messages without
// disturbing the pending indicator.
func (v *View) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writeLocked(string(p))
	return len(p), nil
}

func (v *View) writeLocked(s string) {
	if v.showing {
		fmt.Fprint(v.out, clearLine)
	}
	fmt.Fprint(v.out, s)
	if v.showing {
		fmt.Fprint(v.out, v.pending)
	}
}
