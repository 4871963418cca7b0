package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/flowdoc/internal/flow"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	form  *form.Form
	err   error
	paths []string
}

func (s *stubLoader) Load(_ context.Context, paths ...string) (*form.Form, error) {
	s.paths = paths
	return s.form, s.err
}

func (s *stubLoader) LoadDefault(context.Context) (*form.Form, error) {
	return s.form, s.err
}

var oneQuestion = &form.Form{
	Title:    "One",
	Sections: []*form.Section{{Name: "Only", Questions: []string{"Why?"}}},
}

func TestNewApp_PanicsOnFormError(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{FormPath: "x.hcl"})
	require.NoError(t, err)

	assert.PanicsWithError(t, "failed to load form: boom", func() {
		NewApp(context.Background(), strings.NewReader(""), io.Discard, io.Discard, cfg, &stubLoader{err: errors.New("boom")})
	})
}

func TestNewApp_UsesFormPath(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{FormPath: "forms/"})
	require.NoError(t, err)
	loader := &stubLoader{form: oneQuestion}

	a := NewApp(context.Background(), strings.NewReader(""), io.Discard, io.Discard, cfg, loader)
	assert.Equal(t, []string{"forms/"}, loader.paths)
	assert.Same(t, oneQuestion, a.Form())
}

func TestRun_WritesReportAndRemovesSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(Config{SessionPath: filepath.Join(dir, "s.json"), NoBanner: true})
	require.NoError(t, err)
	reportPath := filepath.Join(dir, "why.txt")
	require.NoError(t, os.WriteFile(cfg.SessionPath, []byte(`{"filename":"`+reportPath+`","index":0,"answers":[]}`), 0644))

	var out strings.Builder
	in := strings.NewReader("y\nbecause\ndone\n")
	a := NewApp(context.Background(), in, &out, io.Discard, cfg, &stubLoader{form: oneQuestion})

	outcome, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, flow.OutcomeCompleted, outcome)

	raw, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, "\n### Only\n- **Why?**\n  - because\n", string(raw))

	_, err = os.Stat(cfg.SessionPath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, out.String(), "Saved to: "+reportPath+" (33 B)")
}
