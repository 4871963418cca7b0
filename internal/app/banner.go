package app

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/console"
	"github.com/specialistvlad/flowdoc/internal/flow"
)

var rule = strings.Repeat("─", 76)

func (a *App) printBanner(term *console.Console) {
	spell := func(k flow.Kind) string {
		if words := a.keymap.Spellings(k); len(words) > 0 {
			return words[0]
		}
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n🧠 %s\n%s\n", rule, a.form.Title, rule)
	if a.form.Intro != "" {
		fmt.Fprintf(&b, "\n%s\n", a.form.Intro)
	}
	fmt.Fprintf(&b, "\n🟢 Instructions:\n")
	fmt.Fprintf(&b, "- Answer each question to the best of your knowledge.\n")
	fmt.Fprintf(&b, "- You can enter multiple bullet points. Press ENTER after each line.\n")
	fmt.Fprintf(&b, "- Type '%s' on a new line when you're finished with a question.\n", spell(flow.KindDone))
	fmt.Fprintf(&b, "- Type '%s' at any time to save your progress and exit.\n", spell(flow.KindPause))
	fmt.Fprintf(&b, "- Navigation:\n")
	fmt.Fprintf(&b, "  %-5s → Go to the previous question\n", spell(flow.KindBack))
	fmt.Fprintf(&b, "  %-5s → Skip the current question\n", spell(flow.KindSkip))
	fmt.Fprintf(&b, "  %-5s → Finish early\n", spell(flow.KindFinish))
	fmt.Fprintf(&b, "\nLet's get started!\n%s\n", rule)

	term.Printf("%s", b.String())
}
