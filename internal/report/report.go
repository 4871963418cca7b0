// Package report renders a finished session into the plain-text document
// grouped by section.
package report

import (
	"os"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/form"
)

// NoAnswer is written for questions without answer lines.
const NoAnswer = "[No answer provided]"

// Build renders answers against questions in definition order. A section
// heading is emitted every time the section changes.
func Build(questions []form.Question, answers [][]string) string {
	var b strings.Builder
	lastSection := ""
	for i, q := range questions {
		if i == 0 || q.Section != lastSection {
			b.WriteString("\n### " + q.Section + "\n")
			lastSection = q.Section
		}
		b.WriteString("- **" + q.Text + "**\n")

		var lines []string
		if i < len(answers) {
			lines = answers[i]
		}
		if len(lines) == 0 {
			b.WriteString("  " + NoAnswer + "\n")
			continue
		}
		for _, line := range lines {
			b.WriteString("  - " + line + "\n")
		}
	}
	return b.String()
}

// Write overwrites the report file at path.
func Write(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
