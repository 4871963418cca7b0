package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/ctxlog"
)

// Decision is the outcome of looking for a previous session at startup.
type Decision int

const (
	// DecisionFresh means no snapshot existed.
	DecisionFresh Decision = iota
	// DecisionResume means the saved snapshot was loaded.
	DecisionResume
	// DecisionDiscard means a snapshot existed, was backed up, and a new
	// session was started.
	DecisionDiscard
)

func (d Decision) String() string {
	switch d {
	case DecisionFresh:
		return "fresh"
	case DecisionResume:
		return "resume"
	case DecisionDiscard:
		return "discard"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

const (
	resumePrompt   = "A saved session was found. Resume previous session? (y/n): "
	filenamePrompt = "What should the output .txt file be named? (e.g. order_flow.txt): "
)

// Prompter asks the user a single-line question.
type Prompter interface {
	Ask(prompt string) (string, error)
	Printf(format string, args ...any)
}

// Decide maps snapshot presence and the user's resume reply to a Decision.
// Only "y" (any case, surrounding whitespace ignored) resumes.
func Decide(exists bool, reply string) Decision {
	if !exists {
		return DecisionFresh
	}
	if strings.EqualFold(strings.TrimSpace(reply), "y") {
		return DecisionResume
	}
	return DecisionDiscard
}

// Start loads or creates the session for a form of n questions.
func Start(ctx context.Context, store Store, p Prompter, n int) (*Session, Decision, error) {
	logger := ctxlog.FromContext(ctx)

	exists, err := store.Exists(ctx)
	if err != nil {
		return nil, DecisionFresh, fmt.Errorf("failed to check for saved session: %w", err)
	}

	var reply string
	if exists {
		if reply, err = p.Ask(resumePrompt); err != nil {
			return nil, DecisionFresh, err
		}
	}

	decision := Decide(exists, reply)
	logger.Debug("Session start decided.", "decision", decision.String(), "location", store.Location())

	switch decision {
	case DecisionResume:
		s, err := store.Load(ctx)
		if err != nil {
			return nil, decision, fmt.Errorf("failed to load saved session: %w", err)
		}
		if len(s.Answers) < n {
			logger.Debug("Padding answers for a longer form.", "saved", len(s.Answers), "questions", n)
		}
		s.Pad(n)
		s.Clamp(n)
		return s, decision, nil

	case DecisionDiscard:
		name, err := askFilename(p)
		if err != nil {
			return nil, decision, err
		}
		backup, err := store.Backup(ctx, name)
		if err != nil {
			return nil, decision, fmt.Errorf("failed to back up previous session: %w", err)
		}
		p.Printf("Previous session moved to %s\n", backup)
		logger.Info("Previous session backed up.", "backup", backup)

		kept, err := store.Backups(ctx)
		if err != nil {
			return nil, decision, fmt.Errorf("failed to list session backups: %w", err)
		}
		if len(kept) > 1 {
			p.Printf("Backups kept (%d): %s\n", len(kept), strings.Join(kept, ", "))
		}
		return New(name, n), decision, nil

	default:
		name, err := askFilename(p)
		if err != nil {
			return nil, decision, err
		}
		return New(name, n), decision, nil
	}
}

func askFilename(p Prompter) (string, error) {
	name, err := p.Ask(filenamePrompt)
	if err != nil {
		return "", err
	}
	return EnsureExtension(strings.TrimSpace(name)), nil
}
