package flow

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/specialistvlad/flowdoc/internal/console"
	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/specialistvlad/flowdoc/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSaver struct {
	saved *session.Session
	err   error
}

func (m *memSaver) Save(_ context.Context, s *session.Session) error {
	if m.err != nil {
		return m.err
	}
	m.saved = s.Clone()
	return nil
}

func (m *memSaver) Location() string { return "memory" }

var threeQuestions = []form.Question{
	{Section: "Core", Text: "What does it decide?"},
	{Section: "Core", Text: "Any branching?"},
	{Section: "Tests", Text: "Happy path tested?"},
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func runScript(t *testing.T, s *session.Session, saver *memSaver, lines ...string) (Outcome, string, error) {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	r := NewRunner(console.New(in, &out), saver, threeQuestions, nil)
	outcome, err := r.Run(testContext(), s)
	return outcome, out.String(), err
}

func TestRun_DoneOnEveryQuestion(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	outcome, out, err := runScript(t, s, &memSaver{},
		"validates input", "  computes fees  ", "done",
		"done",
		"yes", "DONE",
	)
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, [][]string{{"validates input", "computes fees"}, {}, {"yes"}}, s.Answers)
	assert.Contains(t, out, "Section: Core\nQ1/3: What does it decide?\n")
	assert.Contains(t, out, "Q3/3: Happy path tested?")
	assert.Contains(t, out, "Type 'done' to finish. '<', '>', 'd', or 'pause' to control navigation.")
}

func TestRun_SkipDiscardsBuffer(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	_, _, err := runScript(t, s, &memSaver{}, "draft", ">", "skip", "done")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{}, {}, {}}, s.Answers)
}

func TestRun_BackAtFirstQuestionIsText(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	_, _, err := runScript(t, s, &memSaver{}, "<", "done", "d")
	require.NoError(t, err)

	assert.Equal(t, []string{"<"}, s.Answers[0])
}

func TestRun_BackShowsAndExtendsExistingAnswer(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	_, out, err := runScript(t, s, &memSaver{},
		"first", "done",
		"lost", "<",
		"second", "done",
		"d",
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, s.Answers[0])
	assert.Empty(t, s.Answers[1], "lines typed before going back are discarded")
	assert.Contains(t, out, "Current Answers:\n  - first\n")
}

func TestRun_FinishDiscardsInProgressLines(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	outcome, _, err := runScript(t, s, &memSaver{}, "kept", "done", "not kept", "finish")
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, [][]string{{"kept"}, {}, {}}, s.Answers)
}

func TestRun_PauseSavesCommittedStateOnly(t *testing.T) {
	t.Parallel()

	saver := &memSaver{}
	s := session.New("r", len(threeQuestions))
	outcome, out, err := runScript(t, s, saver, "requirement A", "done", "uncommitted", "pause", "never read")
	require.NoError(t, err)

	assert.Equal(t, OutcomePaused, outcome)
	require.NotNil(t, saver.saved)
	assert.Equal(t, "r.txt", saver.saved.Filename)
	assert.Equal(t, 1, saver.saved.Index)
	assert.Equal(t, [][]string{{"requirement A"}, {}, {}}, saver.saved.Answers)
	assert.Contains(t, out, "Session saved to memory.")
}

func TestRun_PauseSaveFailure(t *testing.T) {
	t.Parallel()

	saver := &memSaver{err: errors.New("disk full")}
	_, _, err := runScript(t, session.New("r", 3), saver, "pause")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_InputClosed(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	_, _, err := runScript(t, s, &memSaver{}, "only a line")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestRun_ResumedAtEndDoesNothing(t *testing.T) {
	t.Parallel()

	s := session.New("r", len(threeQuestions))
	s.Index = len(threeQuestions)
	outcome, out, err := runScript(t, s, &memSaver{})
	require.NoError(t, err)

	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Empty(t, out)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	r := NewRunner(console.New(strings.NewReader(""), io.Discard), &memSaver{}, threeQuestions, nil)
	_, err := r.Run(ctx, session.New("r", 3))
	assert.ErrorIs(t, err, context.Canceled)
}

type loggingSaver struct{ memSaver }

func (l *loggingSaver) Save(ctx context.Context, s *session.Session) error {
	ctxlog.FromContext(ctx).Info("saved")
	return l.memSaver.Save(ctx, s)
}

func TestRun_PauseLogsCarryQuestion(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	s := session.New("r", len(threeQuestions))
	in := strings.NewReader("done\npause\n")

	outcome, err := NewRunner(console.New(in, io.Discard), &loggingSaver{}, threeQuestions, nil).Run(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)
	assert.Contains(t, logs.String(), "msg=saved question=2")
}
