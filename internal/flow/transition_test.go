package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	const n = 4
	testCases := []struct {
		name  string
		index int
		kind  Kind
		want  Step
	}{
		{"back mid-form", 2, KindBack, Step{Rule: "back", Next: 1, Effect: EffectDiscard}},
		{"back at first question is text", 0, KindBack, Step{Rule: "back-at-first-is-text", Next: 0, Effect: EffectAppend}},
		{"skip", 1, KindSkip, Step{Rule: "skip", Next: 2, Effect: EffectDiscard}},
		{"skip on last question ends", 3, KindSkip, Step{Rule: "skip", Next: 4, Effect: EffectDiscard}},
		{"done", 0, KindDone, Step{Rule: "done", Next: 1, Effect: EffectCommit}},
		{"finish jumps to end", 1, KindFinish, Step{Rule: "finish", Next: n, Effect: EffectFinish}},
		{"pause keeps cursor", 2, KindPause, Step{Rule: "pause", Next: 2, Effect: EffectPause}},
		{"text keeps cursor", 3, KindText, Step{Rule: "text", Next: 3, Effect: EffectAppend}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Transition(tc.index, n, tc.kind))
		})
	}
}

func TestTransition_EveryKindResolves(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindText, KindBack, KindSkip, KindDone, KindFinish, KindPause} {
		for index := 0; index < 3; index++ {
			assert.NotPanics(t, func() { Transition(index, 3, kind) }, "%s at %d", kind, index)
		}
	}
}

func TestTransition_UnknownKindPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Transition(0, 1, Kind(99)) })
}

func TestClassify(t *testing.T) {
	t.Parallel()

	km := DefaultKeymap()
	testCases := map[string]Kind{
		"<":             KindBack,
		"BACK":          KindBack,
		"Previous":      KindBack,
		">":             KindSkip,
		"Skip":          KindSkip,
		"DONE":          KindDone,
		"d":             KindFinish,
		"D":             KindFinish,
		"finish":        KindFinish,
		"PaUsE":         KindPause,
		"done.":         KindText,
		"":              KindText,
		"requirement A": KindText,
	}
	for line, want := range testCases {
		assert.Equal(t, want, km.Classify(line), "line %q", line)
	}
}

func TestKeymap_Spellings(t *testing.T) {
	t.Parallel()

	km := NewKeymap(map[Kind][]string{KindBack: {"Prev", "<"}})
	assert.Equal(t, []string{"<", "prev"}, km.Spellings(KindBack))
	assert.Empty(t, km.Spellings(KindSkip))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pause", KindPause.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "commit", EffectCommit.String())
	assert.Equal(t, "Effect(9)", Effect(9).String())
	assert.Equal(t, "paused", OutcomePaused.String())
	assert.Equal(t, "completed", OutcomeCompleted.String())
}
