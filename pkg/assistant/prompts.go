package assistant

import (
	"fmt"
	"strings"

	"github.com/PJRenu/LegaLuna/pkg/language"
)

type prompt struct {
	system string
	user   string
}

const (
	systemEN = "You are a helpful legal assistant for Indian citizens."
	systemHI = "आप भारतीय नागरिकों के लिए एक सहायक कानूनी सहायक हैं।"

	fallbackSystemHI = "आप भारतीय कानूनों पर एक सहायक कानूनी सलाहकार हैं।"
)

func ragPrompt(lang language.Code, passages []string, query string) prompt {
	body := strings.Join(passages, "\n\n")
	if lang == language.Hindi {
		return prompt{
			system: systemHI,
			user: fmt.Sprintf("निम्नलिखित भारतीय कानूनी जानकारी के आधार पर प्रश्न का उत्तर दें:\n\n%s\n\nप्रश्न: %s\n\n"+
				"सरल, स्पष्ट भाषा में उत्तर दें। यदि आप प्रदान की गई जानकारी के आधार पर उत्तर नहीं जानते हैं, तो जानकारी बनाने के बजाय ऐसा कहें।",
				body, query),
		}
	}
	return prompt{
		system: systemEN,
		user: fmt.Sprintf("Answer the question based on the following Indian legal information:\n\n%s\n\nQuestion: %s\n\n"+
			"Answer in simple, clear language. If you don't know the answer based on the provided information, say so instead of making up information.",
			body, query),
	}
}

func fallbackPrompt(lang language.Code, query string) prompt {
	if lang == language.Hindi {
		return prompt{
			system: fallbackSystemHI,
			user: "उपयोगकर्ता के प्रश्न के आधार पर केवल सामान्य जानकारी प्रदान करें।\n" +
				"विशिष्ट कानूनी सलाह देने से बचें।\n" +
				"अपने उत्तर में यह स्पष्ट करें कि आप केवल सामान्य जानकारी प्रदान कर रहे हैं और महत्वपूर्ण मामलों के लिए योग्य वकील से परामर्श करने की सलाह दें।\n\n" +
				"प्रश्न: " + query + "\n\n" +
				"सरल, स्पष्ट भाषा में उत्तर दें। यदि आप निश्चित नहीं हैं, तो जानकारी बनाने के बजाय ऐसा कहें।",
		}
	}
	return prompt{
		system: systemEN,
		user: "Provide only general information based on the user's question.\n" +
			"Avoid giving specific legal advice.\n" +
			"Make it clear in your response that you are providing general information only and recommend consulting with a qualified lawyer for important matters.\n\n" +
			"Question: " + query + "\n\n" +
			"Answer in simple, clear language. If you are unsure, say so instead of making up information.",
	}
}

// Used when no model is reachable and nothing was retrieved.
var consultLawyer = map[language.Code]string{
	language.English: "I could not find information on this question. This is general information only; please consult a qualified lawyer for advice on your situation.",
	language.Hindi:   "मुझे इस प्रश्न पर जानकारी नहीं मिली। यह केवल सामान्य जानकारी है; अपनी स्थिति के लिए कृपया योग्य वकील से परामर्श करें।",
}

var extractiveLead = map[language.Code]string{
	language.English: "Based on the available legal information:",
	language.Hindi:   "उपलब्ध कानूनी जानकारी के आधार पर:",
}
