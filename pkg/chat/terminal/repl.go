package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/PJRenu/LegaLuna/pkg/chat"
	"github.com/PJRenu/LegaLuna/pkg/language"
)

// LineReader yields one line of user input per call and io.EOF at the end.
type LineReader interface {
	Readline() (string, error)
}

// ErrInterrupted may be returned by a LineReader on Ctrl-C; the session
// ends like on EOF.
var ErrInterrupted = errors.New("interrupted")

const help = "commands: /en /hi switch language, /examples, /<n> ask example n, /quit"

// Session reads commands and questions until EOF or /quit. Questions are
// submitted in the background so language switches work while one is
// pending. Leaving the session cancels any outstanding question, and Run
// returns once its goroutine has finished. out should be the View so that
// session messages do not break the pending indicator.
type Session struct {
	ctrl *chat.Controller
	in   LineReader
	out  io.Writer
	mu   sync.Mutex
	wg   sync.WaitGroup
}

func NewSession(ctrl *chat.Controller, in LineReader, out io.Writer) *Session {
	return &Session{ctrl: ctrl, in: in, out: out}
}

func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.wg.Wait()
	}()
	for {
		line, err := s.in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if quit := s.handle(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (s *Session) handle(ctx context.Context, line string) (quit bool) {
	if !strings.HasPrefix(line, "/") {
		s.submit(ctx, func(ctx context.Context) error { return s.ctrl.Submit(ctx, line) })
		return false
	}
	cmd := strings.ToLower(strings.TrimPrefix(line, "/"))
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "examples":
		for i, ex := range s.ctrl.Presentation().Examples {
			s.printf("  /%d %s\n", i+1, ex)
		}
	case "help", "?":
		s.printf("%s\n", help)
	default:
		if code, err := language.Parse(cmd); err == nil {
			_ = s.ctrl.SetLanguage(code)
			return false
		}
		n, err := strconv.Atoi(cmd)
		if err != nil {
			s.printf("unknown command %q; %s\n", line, help)
			return false
		}
		ex, ok := s.ctrl.Example(n - 1)
		if !ok {
			s.printf("no example %d\n", n)
			return false
		}
		s.submit(ctx, func(ctx context.Context) error { return s.ctrl.SelectExample(ctx, ex) })
	}
	return false
}

func (s *Session) submit(ctx context.Context, fn func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if errors.Is(fn(ctx), chat.ErrBusy) {
			s.printf("still waiting for the previous answer\n")
		}
	}()
}

func (s *Session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
