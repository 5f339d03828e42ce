package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"

	"github.com/PJRenu/LegaLuna/pkg/llm"
)

type fakeModels struct {
	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
	resp        *genai.GenerateContentResponse
	err         error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = cfg
	return f.resp, f.err
}

func TestAskJoinsTextParts(t *testing.T) {
	fake := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "File "}, {Text: "an FIR."}}}}},
	}}
	c := &Client{models: fake, model: "gemini-test"}

	got, err := c.Ask(context.Background(), "be helpful", "How do I file an FIR?")

	require.NoError(t, err)
	assert.Equal(t, "File an FIR.", got)
	assert.Equal(t, "gemini-test", fake.gotModel)
	require.Len(t, fake.gotContents, 1)
	assert.Equal(t, "How do I file an FIR?", fake.gotContents[0].Parts[0].Text)
	require.NotNil(t, fake.gotConfig)
	assert.Equal(t, "be helpful", fake.gotConfig.SystemInstruction.Parts[0].Text)
}

func TestAskErrors(t *testing.T) {
	c, err := New(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.Model())
	_, err = c.Ask(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	boom := errors.New("quota")
	_, err = (&Client{models: &fakeModels{err: boom}}).Ask(context.Background(), "", "u")
	assert.ErrorIs(t, err, boom)

	_, err = (&Client{models: &fakeModels{resp: &genai.GenerateContentResponse{}}}).Ask(context.Background(), "", "u")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
