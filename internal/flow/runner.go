package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/specialistvlad/flowdoc/internal/session"
)

// ErrInputClosed is returned when input ends before the questionnaire does.
var ErrInputClosed = errors.New("input closed before the questionnaire finished")

// Outcome is how a Run ended.
type Outcome int

const (
	// OutcomeCompleted means the cursor reached the end; a report is due.
	OutcomeCompleted Outcome = iota
	// OutcomePaused means the snapshot was saved and no report is due.
	OutcomePaused
)

func (o Outcome) String() string {
	if o == OutcomePaused {
		return "paused"
	}
	return "completed"
}

// Terminal is the console surface the runner needs.
type Terminal interface {
	Ask(prompt string) (string, error)
	Printf(format string, args ...any)
}

// Saver persists a snapshot on pause.
type Saver interface {
	Save(ctx context.Context, s *session.Session) error
	Location() string
}

// Runner asks every question of a form against one session.
type Runner struct {
	term      Terminal
	saver     Saver
	keymap    Keymap
	questions []form.Question
}

// NewRunner creates a Runner. A nil keymap means DefaultKeymap.
func NewRunner(term Terminal, saver Saver, questions []form.Question, keymap Keymap) *Runner {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Runner{term: term, saver: saver, keymap: keymap, questions: questions}
}

// Hint is the one-line control reminder printed under each question.
func (r *Runner) Hint() string {
	return fmt.Sprintf("Enter each line of your answer. Type '%s' to finish. '%s', '%s', '%s', or '%s' to control navigation.",
		first(r.keymap.Spellings(KindDone)),
		first(r.keymap.Spellings(KindBack)),
		first(r.keymap.Spellings(KindSkip)),
		first(r.keymap.Spellings(KindFinish)),
		first(r.keymap.Spellings(KindPause)),
	)
}

// Run drives s until the cursor reaches the end or the user pauses.
// s is mutated in place.
func (r *Runner) Run(ctx context.Context, s *session.Session) (Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	n := len(r.questions)
	s.Pad(n)

	for s.Index < n {
		if err := ctx.Err(); err != nil {
			return OutcomeCompleted, err
		}
		r.ask(s)

		paused, err := r.answer(ctx, s, n)
		if err != nil {
			return OutcomeCompleted, err
		}
		if paused {
			return OutcomePaused, nil
		}
	}

	logger.Debug("Questionnaire traversal finished.", "questions", n)
	return OutcomeCompleted, nil
}

func (r *Runner) ask(s *session.Session) {
	q := r.questions[s.Index]
	r.term.Printf("\nSection: %s\n", q.Section)
	r.term.Printf("Q%d/%d: %s\n", s.Index+1, len(r.questions), q.Text)
	if current := s.Answers[s.Index]; len(current) > 0 {
		r.term.Printf("Current Answers:\n")
		for _, line := range current {
			r.term.Printf("  - %s\n", line)
		}
	}
	r.term.Printf("%s\n", r.Hint())
}

// answer reads lines for the current question until the cursor moves.
func (r *Runner) answer(ctx context.Context, s *session.Session, n int) (bool, error) {
	ctx = ctxlog.With(ctx, "question", s.Index+1)
	logger := ctxlog.FromContext(ctx)
	var buf []string

	for {
		raw, err := r.term.Ask("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, ErrInputClosed
			}
			return false, err
		}
		line := strings.TrimSpace(raw)

		step := Transition(s.Index, n, r.keymap.Classify(line))
		if step.Effect != EffectAppend {
			logger.Debug("Transition.", "rule", step.Rule, "next", step.Next, "buffered", len(buf))
		}

		switch step.Effect {
		case EffectAppend:
			buf = append(buf, line)
			continue
		case EffectCommit:
			s.Commit(s.Index, buf)
		case EffectPause:
			if err := r.saver.Save(ctx, s); err != nil {
				return false, fmt.Errorf("failed to save session: %w", err)
			}
			r.term.Printf("Session saved to %s. You can resume later by running this tool again.\n", r.saver.Location())
			return true, nil
		}

		s.Index = step.Next
		return false, nil
	}
}

func first(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
