package nlp

import (
	"regexp"
	"strings"
)

var (
	// Devanagari vowel signs and viramas are marks (\p{M}), so they must
	// survive normalization or Hindi words fall apart into fragments.
	reNonWord = regexp.MustCompile(`[^\p{L}\p{M}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases s, replaces every run of non-word characters with
// a space and collapses whitespace.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	return CollapseSpaces(s)
}

// CollapseSpaces squeezes whitespace runs into one space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// Tokens returns the unique tokens of normalized text.
func Tokens(normalized string) map[string]struct{} {
	out := make(map[string]struct{})
	if normalized == "" {
		return out
	}
	for _, t := range strings.Split(normalized, " ") {
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

// Keywords normalizes text and returns its unique tokens minus stopwords.
func Keywords(text string) map[string]struct{} {
	tokens := Tokens(NormalizeText(text))
	for t := range tokens {
		if IsStopword(t) {
			delete(tokens, t)
		}
	}
	return tokens
}

// ContainsPhrase reports whether an already normalized phrase occurs in
// normalized text as whole words: "rest api" matches "... rest api ..." but
// not "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
