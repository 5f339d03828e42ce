package chat

import "github.com/PJRenu/LegaLuna/pkg/language"

// Presentation is the set of language-dependent strings of the widget.
type Presentation struct {
	Language     language.Code
	Placeholder  string
	SendLabel    string
	PendingLabel string
	ErrorText    string
	Examples     []string
}

var presentations = map[language.Code]Presentation{
	language.English: {
		Language:     language.English,
		Placeholder:  "Ask a legal question...",
		SendLabel:    "Send",
		PendingLabel: "Thinking...",
		ErrorText:    "Sorry, an error occurred. Please try again later.",
		Examples: []string{
			"How do I file an FIR?",
			"What are my rights as a tenant?",
			"How can I get legal aid?",
			"What is the procedure for divorce?",
			"What are my property inheritance rights?",
		},
	},
	language.Hindi: {
		Language:     language.Hindi,
		Placeholder:  "कानूनी प्रश्न पूछें...",
		SendLabel:    "भेजें",
		PendingLabel: "सोच रहा हूँ...",
		ErrorText:    "क्षमा करें, कोई त्रुटि हुई। कृपया बाद में पुनः प्रयास करें।",
		Examples: []string{
			"मैं FIR कैसे दर्ज करूं?",
			"किरायेदार के रूप में मेरे क्या अधिकार हैं?",
			"मुझे कानूनी सहायता कैसे मिल सकती है?",
			"तलाक की प्रक्रिया क्या है?",
			"मेरे संपत्ति विरासत अधिकार क्या हैं?",
		},
	},
}

// PresentationFor returns a copy of the strings for code, falling back to
// English for unsupported codes.
func PresentationFor(code language.Code) Presentation {
	p, ok := presentations[code]
	if !ok {
		p = presentations[language.English]
	}
	p.Examples = append([]string(nil), p.Examples...)
	return p
}
