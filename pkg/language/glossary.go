package language

import (
	"regexp"
	"strings"
)

type term struct {
	hindi   string
	english string
	pattern *regexp.Regexp
}

// glossary pairs common legal vocabulary. Order matters for Hindi
// substitution, which works on substrings.
var glossary = newGlossary([][2]string{
	{"कानून", "law"},
	{"अदालत", "court"},
	{"वकील", "lawyer"},
	{"न्यायाधीश", "judge"},
	{"अपराध", "crime"},
	{"विवाह", "marriage"},
	{"तलाक", "divorce"},
	{"संपत्ति", "property"},
	{"किरायेदार", "tenant"},
	{"मकान मालिक", "landlord"},
	{"करार", "agreement"},
	{"एफआईआर", "FIR"},
	{"पुलिस", "police"},
	{"अधिकार", "rights"},
})

func newGlossary(pairs [][2]string) []term {
	out := make([]term, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, term{
			hindi:   p[0],
			english: p[1],
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p[1]) + `\b`),
		})
	}
	return out
}

// GlossHindiToEnglish annotates known Hindi legal terms with their English
// equivalent, e.g. "तलाक" becomes "तलाक(divorce)".
func GlossHindiToEnglish(text string) string {
	for _, t := range glossary {
		text = strings.ReplaceAll(text, t.hindi, t.hindi+"("+t.english+")")
	}
	return text
}

// GlossEnglishToHindi annotates known English legal terms, matched as whole
// words in any case, with their Hindi equivalent.
func GlossEnglishToHindi(text string) string {
	for _, t := range glossary {
		text = t.pattern.ReplaceAllString(text, "${0}("+t.hindi+")")
	}
	return text
}

// Gloss annotates text written in from with terms of to. Same-language or
// unsupported pairs return text unchanged.
func Gloss(text string, from, to Code) string {
	switch {
	case from == Hindi && to == English:
		return GlossHindiToEnglish(text)
	case from == English && to == Hindi:
		return GlossEnglishToHindi(text)
	}
	return text
}
