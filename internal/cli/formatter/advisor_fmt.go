package formatter

import (
	"strings"

	"github.com/alexanderramin/optistudy/internal/advisor"
)

// FormatAnswer prefixes the first line with the advisor marker and indents
// the rest.
func FormatAnswer(a *advisor.Answer) string {
	var b strings.Builder
	for i, line := range a.Lines {
		if i == 0 {
			b.WriteString(StylePurple.Render("🤖") + " " + line + "\n")
			continue
		}
		b.WriteString("   " + line + "\n")
	}
	return b.String()
}
