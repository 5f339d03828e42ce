// Package language holds the two supported languages and the text helpers
// the assistant needs around them: detection, Hindi normalization and a
// legal-term glossary used when machine translation is unavailable.
package language

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/PJRenu/LegaLuna/pkg/nlp"
)

// Code identifies a supported language.
type Code string

const (
	English Code = "en"
	Hindi   Code = "hi"
)

// ErrUnsupported is returned for any language other than English or Hindi.
var ErrUnsupported = errors.New("unsupported language")

// All lists the supported languages in display order.
var All = []Code{English, Hindi}

func (c Code) String() string { return string(c) }

// Valid reports whether c is English or Hindi.
func (c Code) Valid() bool { return c == English || c == Hindi }

// Parse accepts "en"/"english" and "hi"/"hindi" in any case.
func Parse(s string) (Code, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "hi", "hindi":
		return Hindi, nil
	}
	return "", ErrUnsupported
}

// shortText is the rune length below which any Devanagari character
// marks the text as Hindi.
const shortText = 20

// Detect guesses whether text is Hindi or English. Digits and punctuation are
// ignored. Short texts are Hindi as soon as one Devanagari rune appears;
// longer ones are Hindi when Devanagari letters outnumber Latin ones.
// Anything undecidable is English.
func Detect(text string) Code {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, text)

	if utf8.RuneCountInString(cleaned) < shortText {
		for _, r := range cleaned {
			if isDevanagari(r) {
				return Hindi
			}
		}
		return English
	}

	var deva, latin int
	for _, r := range cleaned {
		switch {
		case isDevanagari(r):
			deva++
		case unicode.In(r, unicode.Latin):
			latin++
		}
	}
	if deva > latin {
		return Hindi
	}
	return English
}

func isDevanagari(r rune) bool { return r >= 0x0900 && r <= 0x097F }

// NormalizeHindi applies canonical composition and collapses whitespace.
func NormalizeHindi(text string) string {
	return nlp.CollapseSpaces(norm.NFC.String(text))
}
