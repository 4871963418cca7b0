package flow

import "fmt"

// Effect is what a transition does to the in-progress answer buffer.
type Effect int

const (
	// EffectAppend adds the line to the buffer; the cursor stays.
	EffectAppend Effect = iota
	// EffectDiscard drops the buffer.
	EffectDiscard
	// EffectCommit appends the buffer to the current answer.
	EffectCommit
	// EffectFinish drops the buffer and jumps to the end.
	EffectFinish
	// EffectPause saves the snapshot and stops without a report.
	EffectPause
)

func (e Effect) String() string {
	switch e {
	case EffectAppend:
		return "append"
	case EffectDiscard:
		return "discard"
	case EffectCommit:
		return "commit"
	case EffectFinish:
		return "finish"
	case EffectPause:
		return "pause"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// Rule is one row of the transition table.
type Rule struct {
	Name   string
	Kind   Kind
	Guard  func(index, n int) bool // nil matches always
	Next   func(index, n int) int
	Effect Effect
}

// Step is a resolved transition.
type Step struct {
	Rule   string
	Next   int
	Effect Effect
}

func stay(index, _ int) int { return index }
func next(index, _ int) int { return index + 1 }
func prev(index, _ int) int { return index - 1 }
func end(_, n int) int      { return n }

func atFirst(index, _ int) bool   { return index == 0 }
func pastFirst(index, _ int) bool { return index > 0 }

// Rules is the transition table, matched top to bottom.
var Rules = []Rule{
	{Name: "back", Kind: KindBack, Guard: pastFirst, Next: prev, Effect: EffectDiscard},
	{Name: "back-at-first-is-text", Kind: KindBack, Guard: atFirst, Next: stay, Effect: EffectAppend},
	{Name: "skip", Kind: KindSkip, Next: next, Effect: EffectDiscard},
	{Name: "done", Kind: KindDone, Next: next, Effect: EffectCommit},
	{Name: "finish", Kind: KindFinish, Next: end, Effect: EffectFinish},
	{Name: "pause", Kind: KindPause, Next: stay, Effect: EffectPause},
	{Name: "text", Kind: KindText, Next: stay, Effect: EffectAppend},
}

// Transition resolves the rule for kind at cursor index of n questions.
func Transition(index, n int, kind Kind) Step {
	for _, r := range Rules {
		if r.Kind != kind {
			continue
		}
		if r.Guard != nil && !r.Guard(index, n) {
			continue
		}
		return Step{Rule: r.Name, Next: r.Next(index, n), Effect: r.Effect}
	}
	panic(fmt.Sprintf("flow: no transition for %s at %d/%d", kind, index, n))
}
