package assistant

import (
	"strings"

	"github.com/PJRenu/LegaLuna/pkg/knowledge"
	"github.com/PJRenu/LegaLuna/pkg/language"
)

// extractiveAnswer stitches the retrieved passages together when no model
// could produce an answer.
func extractiveAnswer(lang language.Code, matches []knowledge.Match) string {
	if len(matches) == 0 {
		return consultLawyer[lang]
	}
	var b strings.Builder
	b.WriteString(extractiveLead[lang])
	for _, m := range matches {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimSpace(m.Document.Content))
	}
	return b.String()
}
