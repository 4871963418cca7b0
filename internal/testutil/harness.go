// Package testutil provides a scripted harness that runs the whole
// application against a temporary directory and a fixed stdin script.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/flowdoc/internal/app"
	"github.com/specialistvlad/flowdoc/internal/flow"
	"github.com/specialistvlad/flowdoc/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Workspace is a temporary directory holding the form, the session
// snapshot, and reports for one test.
type Workspace struct {
	Dir      string
	FormPath string
	Config   app.Config
}

// NewWorkspace writes formHCL (or uses the built-in form when empty) and
// points the session snapshot into a fresh temp dir.
func NewWorkspace(t *testing.T, formHCL string) *Workspace {
	t.Helper()

	dir := t.TempDir()
	ws := &Workspace{
		Dir: dir,
		Config: app.Config{
			SessionPath: filepath.Join(dir, "flow_progress.json"),
			StoreKind:   app.StoreJSON,
			LogLevel:    "debug",
			LogFormat:   "text",
			NoBanner:    true,
		},
	}
	if formHCL != "" {
		ws.FormPath = filepath.Join(dir, "form.hcl")
		require.NoError(t, os.WriteFile(ws.FormPath, []byte(formHCL), 0644))
		ws.Config.FormPath = ws.FormPath
	}
	return ws
}

// Path returns name joined onto the workspace directory.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// ReadFile returns the content of a workspace file.
func (w *Workspace) ReadFile(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(w.Path(name))
	require.NoError(t, err)
	return string(raw)
}

// Exists reports whether a workspace file is present.
func (w *Workspace) Exists(name string) bool {
	_, err := os.Stat(w.Path(name))
	return err == nil
}

// RunResult holds the outcomes of one scripted run.
type RunResult struct {
	Output    string
	LogOutput string
	Outcome   flow.Outcome
	Err       error
}

// Run starts a fresh App on the workspace and feeds it lines as stdin.
func (w *Workspace) Run(t *testing.T, lines ...string) *RunResult {
	t.Helper()

	cfg, err := app.NewConfig(w.Config)
	require.NoError(t, err)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &SafeBuffer{}
	logs := &SafeBuffer{}

	var (
		a        *app.App
		panicErr any
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		a = app.NewApp(context.Background(), in, out, logs, cfg, hcl.NewLoader())
	}()
	if panicErr != nil {
		return &RunResult{
			Output:    out.String(),
			LogOutput: logs.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	outcome, runErr := a.Run(context.Background())

	if os.Getenv("FLOWDOC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &RunResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Outcome:   outcome,
		Err:       runErr,
	}
}
