package knowledge

import (
	"sort"

	"github.com/PJRenu/LegaLuna/pkg/language"
	"github.com/PJRenu/LegaLuna/pkg/nlp"
)

// Match is a retrieved document with its similarity in [0,1].
type Match struct {
	Document   Document
	Similarity float64
}

type indexed struct {
	doc      Document
	keywords map[string]struct{}
}

// Index ranks documents by keyword overlap with the query. It is read-only
// after construction and safe for concurrent use.
type Index struct {
	docs []indexed
}

func NewIndex(docs []Document) *Index {
	idx := &Index{docs: make([]indexed, 0, len(docs))}
	for _, d := range docs {
		idx.docs = append(idx.docs, indexed{doc: d, keywords: nlp.Keywords(d.Content)})
	}
	return idx
}

func (i *Index) Len() int { return len(i.docs) }

// Documents returns the indexed documents in lang, or all of them when
// lang is empty, in load order.
func (i *Index) Documents(lang language.Code) []Document {
	out := make([]Document, 0, len(i.docs))
	for _, d := range i.docs {
		if lang == "" || d.doc.Language == lang {
			out = append(out, d.doc)
		}
	}
	return out
}

// Retrieve returns up to topK documents in lang sharing at least one
// keyword with query, best first. Similarity is the share of query
// keywords found in the document.
func (i *Index) Retrieve(query string, lang language.Code, topK int) []Match {
	if topK <= 0 {
		return nil
	}
	q := nlp.Keywords(query)
	if len(q) == 0 {
		return nil
	}
	var matches []Match
	for _, d := range i.docs {
		if d.doc.Language != lang {
			continue
		}
		hits := 0
		for t := range q {
			if _, ok := d.keywords[t]; ok {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		matches = append(matches, Match{Document: d.doc, Similarity: float64(hits) / float64(len(q))})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Similarity != matches[b].Similarity {
			return matches[a].Similarity > matches[b].Similarity
		}
		return matches[a].Document.Source < matches[b].Document.Source
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}
