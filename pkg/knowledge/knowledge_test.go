package knowledge

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDirMissingUsesSamples(t *testing.T) {
	docs, err := LoadDir(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, docs, 6)

	docs, err = LoadDir(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Samples(), docs)
}

func TestLoadDirParsesAllFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bail.txt", "  Bail can be sought under Section 437.  \n")
	writeFile(t, dir, "empty.txt", "   ")
	writeFile(t, dir, "consumer.json", `[
		{"content": "Consumer complaints go to the District Commission.", "language": "en"},
		{"content": "", "source": "skipped"},
		{"content": "उपभोक्ता शिकायत जिला आयोग में दर्ज होती है।", "source": "consumer_hi", "language": "hi"}
	]`)
	writeFile(t, dir, "single.json", `{"content": "Legal aid is free for eligible citizens."}`)
	writeFile(t, dir, "wills.yaml", "- content: A will must be signed by two witnesses.\n  language: en\n")
	writeFile(t, dir, "notes.md", "ignored")

	docs, err := LoadDir(dir, zerolog.Nop())
	require.NoError(t, err)

	got := map[string]language.Code{}
	for _, d := range docs {
		got[d.Source] = d.Language
		assert.NotEqual(t, uuid.Nil, d.ID)
	}
	assert.Equal(t, map[string]language.Code{
		"bail.txt":      language.English,
		"consumer.json": language.English,
		"consumer_hi":   language.Hindi,
		"single.json":   language.English,
		"wills.yaml":    language.English,
	}, got)
}

func TestLoadDirSkipsBrokenStructuredFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Maintenance can be claimed under Section 125.")
	writeFile(t, dir, "b.json", `{not json`)
	writeFile(t, dir, "c.yaml", "content: [unclosed")

	var logs bytes.Buffer
	docs, err := LoadDir(dir, zerolog.New(&logs))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.txt", docs[0].Source)
	assert.Contains(t, logs.String(), "b.json")
	assert.Contains(t, logs.String(), "c.yaml")
}

func TestLoadDirOnlyBrokenFilesUsesSamples(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"content": `)
	docs, err := LoadDir(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, Samples(), docs)
}

func TestLoadStructuredMarksParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{"content": `)
	_, err := loadStructured(filepath.Join(dir, "broken.json"), "broken.json", json.Unmarshal)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.ErrorContains(t, err, "parse broken.json")
}

func TestDocumentIDStable(t *testing.T) {
	assert.Equal(t, DocumentID("a.txt", "x"), DocumentID("a.txt", "x"))
	assert.NotEqual(t, DocumentID("a.txt", "x"), DocumentID("b.txt", "x"))
}

func TestRetrieveFiltersByLanguageAndRanks(t *testing.T) {
	idx := NewIndex(Samples())
	require.Equal(t, 6, idx.Len())

	matches := idx.Retrieve("How do I file an FIR with the police?", language.English, 3)
	require.NotEmpty(t, matches)
	assert.Equal(t, "criminal_procedure.txt", matches[0].Document.Source)
	for _, m := range matches {
		assert.Equal(t, language.English, m.Document.Language)
		assert.Greater(t, m.Similarity, 0.0)
		assert.LessOrEqual(t, m.Similarity, 1.0)
	}

	hi := idx.Retrieve("किरायेदार नोटिस", language.Hindi, 3)
	require.Len(t, hi, 1)
	assert.Equal(t, "rental_laws_hindi.txt", hi[0].Document.Source)
	assert.Equal(t, 1.0, hi[0].Similarity)
}

func TestRetrieveNoOverlap(t *testing.T) {
	idx := NewIndex(Samples())
	assert.Empty(t, idx.Retrieve("cryptocurrency taxation", language.English, 3))
	assert.Empty(t, idx.Retrieve("how do I", language.English, 3))
	assert.Empty(t, idx.Retrieve("FIR", language.English, 0))
}

func TestIndexDocumentsByLanguage(t *testing.T) {
	idx := NewIndex(Samples())
	assert.Len(t, idx.Documents(""), 6)
	hindi := idx.Documents(language.Hindi)
	require.Len(t, hindi, 3)
	for _, d := range hindi {
		assert.Equal(t, language.Hindi, d.Language)
	}
}
