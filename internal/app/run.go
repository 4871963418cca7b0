package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/specialistvlad/flowdoc/internal/console"
	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/flow"
	"github.com/specialistvlad/flowdoc/internal/report"
	"github.com/specialistvlad/flowdoc/internal/session"
)

// Run executes one questionnaire session: start or resume, ask, and either
// save a snapshot on pause or write the report and drop the snapshot.
func (a *App) Run(ctx context.Context) (flow.Outcome, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	store, err := a.openStore(ctx)
	if err != nil {
		return flow.OutcomeCompleted, fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	term := console.New(a.in, a.outW)
	if !a.config.NoBanner {
		a.printBanner(term)
	}

	questions := a.form.Questions()
	sess, decision, err := session.Start(ctx, store, term, len(questions))
	if err != nil {
		return flow.OutcomeCompleted, err
	}
	a.logger.Info("Session ready.", "decision", decision.String(), "report", sess.Filename, "index", sess.Index)

	runner := flow.NewRunner(term, store, questions, a.keymap)
	outcome, err := runner.Run(ctx, sess)
	if err != nil {
		return outcome, err
	}
	if outcome == flow.OutcomePaused {
		a.logger.Info("Session paused.", "location", store.Location(), "index", sess.Index)
		return outcome, nil
	}

	text := report.Build(questions, sess.Answers)
	if err := report.Write(sess.Filename, text); err != nil {
		return outcome, fmt.Errorf("failed to write report: %w", err)
	}
	if err := store.Remove(ctx); err != nil {
		return outcome, fmt.Errorf("failed to remove session snapshot: %w", err)
	}
	a.logger.Info("Report written.", "path", sess.Filename, "bytes", len(text))

	term.Printf("\nCompleted Documentation:\n%s\n", text)
	term.Printf("\nSaved to: %s (%s)\n", sess.Filename, humanize.Bytes(uint64(len(text))))

	a.logger.Debug("App.Run method finished.")
	return outcome, nil
}
