package nlp

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// English
		"a", "an", "and", "are", "as", "at", "be", "by", "can", "do", "does", "for",
		"from", "get", "how", "i", "if", "in", "is", "it", "me", "my", "of", "on",
		"or", "the", "to", "what", "when", "where", "which", "who", "why", "with",
		"you", "your",
		// Hindi
		"और", "एक", "का", "कि", "की", "के", "को", "क्या", "कैसे", "तो", "था", "पर",
		"मुझे", "में", "मेरे", "मैं", "यह", "से", "हूँ", "है", "हैं", "हो",
	} {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether a normalized token carries no retrieval signal.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
