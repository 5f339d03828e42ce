package terminal

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/chat"
	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/legalquery"
)

type staticQuerier struct{ res legalquery.Result }

func (s staticQuerier) Query(context.Context, string) legalquery.Result { return s.res }

func TestViewRendersConversation(t *testing.T) {
	var out bytes.Buffer
	var prompt string
	v := New(&out, WithPrompt(func(p string) { prompt = p }))

	c := chat.New(staticQuerier{legalquery.Success{Answer: "Visit the police station."}}, v)
	assert.Equal(t, "Ask a legal question... ", prompt)

	require.NoError(t, c.Submit(context.Background(), "How do I file an FIR?"))

	s := out.String()
	assert.Contains(t, s, "[en] Ask a legal question... (Send: Enter)\n")
	assert.Contains(t, s, "  /1 How do I file an FIR?\n")
	assert.Contains(t, s, "You: How do I file an FIR?\nThinking..."+clearLine+"LegaLuna: Visit the police station.\n")
}

func TestViewLanguageSwitchUpdatesPrompt(t *testing.T) {
	var out bytes.Buffer
	var prompt string
	v := New(&out, WithPrompt(func(p string) { prompt = p }), WithNames("Me", "Bot"))
	c := chat.New(staticQuerier{legalquery.Failure{Reason: legalquery.ReasonTransport}}, v)

	require.NoError(t, c.SetLanguage(language.Hindi))
	assert.Equal(t, "कानूनी प्रश्न पूछें... ", prompt)

	require.NoError(t, c.Submit(context.Background(), "तलाक?"))
	assert.Contains(t, out.String(), "Me: तलाक?\n")
	assert.Contains(t, out.String(), "Bot: क्षमा करें, कोई त्रुटि हुई। कृपया बाद में पुनः प्रयास करें।\n")
}

func TestViewKeepsPendingOnLastLineAcrossLanguageSwitch(t *testing.T) {
	out := &syncBuffer{}
	q := gatedQuerier{release: make(chan struct{})}
	v := New(out)
	c := chat.New(q, v)

	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, c.Submit(context.Background(), "What is bail?"))
	}()
	require.Eventually(t, func() bool { _, ok := c.Pending(); return ok }, time.Second, time.Millisecond)

	require.NoError(t, c.SetLanguage(language.Hindi))
	_, _ = fmt.Fprintf(v, "note\n")
	close(q.release)
	<-done

	s := out.String()
	assert.NotContains(t, s, "Thinking...[hi]")
	assert.Contains(t, s, "Thinking..."+clearLine+"[hi] कानूनी प्रश्न पूछें... (भेजें: Enter)\n")
	assert.Contains(t, s, clearLine+"note\nThinking...")
	assert.Equal(t, strings.Count(s, "Thinking..."), strings.Count(s, "Thinking..."+clearLine))
	assert.True(t, strings.HasSuffix(s, "LegaLuna: answer to What is bail?\n"))
}

func TestViewRemovePendingWithoutShowIsNoop(t *testing.T) {
	var out bytes.Buffer
	v := New(&out)
	v.RemovePending(chat.PendingIndicator{})
	assert.Empty(t, out.String())
}
