package flow

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Kind classifies one line of input.
type Kind int

const (
	KindText Kind = iota
	KindBack
	KindSkip
	KindDone
	KindFinish
	KindPause
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBack:
		return "back"
	case KindSkip:
		return "skip"
	case KindDone:
		return "done"
	case KindFinish:
		return "finish"
	case KindPause:
		return "pause"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Keymap maps case-folded control spellings to their kind.
type Keymap map[string]Kind

// DefaultKeymap returns the standard control tokens.
func DefaultKeymap() Keymap {
	return NewKeymap(map[Kind][]string{
		KindBack:   {"<", "back", "previous"},
		KindSkip:   {">", "skip"},
		KindDone:   {"done"},
		KindFinish: {"d", "finish"},
		KindPause:  {"pause"},
	})
}

// NewKeymap builds a Keymap from spellings per kind. Spellings are folded so
// matching is case-insensitive.
func NewKeymap(spellings map[Kind][]string) Keymap {
	km := make(Keymap)
	for kind, words := range spellings {
		for _, w := range words {
			km[fold(strings.TrimSpace(w))] = kind
		}
	}
	return km
}

// Classify returns the kind of a trimmed input line. Unknown lines are text.
func (km Keymap) Classify(line string) Kind {
	if kind, ok := km[fold(line)]; ok {
		return kind
	}
	return KindText
}

// Spellings lists the spellings bound to kind, sorted.
func (km Keymap) Spellings(kind Kind) []string {
	var out []string
	for w, k := range km {
		if k == kind {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
