// Package session holds the resumable questionnaire state, the Store
// interface its snapshots are persisted through, and the startup decision
// between a fresh, resumed, or discarded session.
package session

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ReportExtension is appended to output filenames that lack it.
const ReportExtension = ".txt"

// Session is the mutable state of one questionnaire run. Its JSON form is the
// session snapshot.
type Session struct {
	Filename string     `json:"filename"`
	Index    int        `json:"index"`
	Answers  [][]string `json:"answers"`
}

// New starts a session at the first question with n empty answers.
func New(filename string, n int) *Session {
	s := &Session{Filename: EnsureExtension(filename)}
	s.Pad(n)
	return s
}

// EnsureExtension appends ReportExtension when name does not already end in it.
func EnsureExtension(name string) string {
	if strings.HasSuffix(name, ReportExtension) {
		return name
	}
	return name + ReportExtension
}

// Pad grows Answers with empty lists until it holds n entries and replaces
// null entries with empty lists. It never shrinks.
func (s *Session) Pad(n int) {
	for i := range s.Answers {
		if s.Answers[i] == nil {
			s.Answers[i] = []string{}
		}
	}
	for len(s.Answers) < n {
		s.Answers = append(s.Answers, []string{})
	}
}

// Clamp forces Index into [0, n].
func (s *Session) Clamp(n int) {
	switch {
	case s.Index < 0:
		s.Index = 0
	case s.Index > n:
		s.Index = n
	}
}

// Commit appends lines to the answer at index. Unlike a plain replace, the
// existing answer is kept and an empty commit leaves it unchanged.
func (s *Session) Commit(index int, lines []string) {
	if len(lines) == 0 {
		return
	}
	s.Answers[index] = append(s.Answers[index], lines...)
}

// Clone returns a deep copy, suitable for persisting while the original keeps
// being mutated.
func (s *Session) Clone() *Session {
	c := &Session{Filename: s.Filename, Index: s.Index, Answers: make([][]string, len(s.Answers))}
	for i, a := range s.Answers {
		c.Answers[i] = append([]string{}, a...)
	}
	return c
}

// BackupPath derives the path an abandoned snapshot is renamed to, from the
// snapshot path and the new report filename:
// flow_progress.json + order_flow.txt -> flow_progress.order_flow.bak.json.
func BackupPath(sessionPath, reportFilename string) string {
	dir, base := filepath.Split(sessionPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	report := filepath.Base(reportFilename)
	report = strings.TrimSuffix(report, filepath.Ext(report))
	if report == "" || report == "." {
		report = "unnamed"
	}

	return filepath.Join(dir, stem+"."+report+".bak"+ext)
}

// FreeBackupPath returns the first backup path for sessionPath and
// reportFilename that taken reports as unused: BackupPath itself, then
// flow_progress.order_flow.bak.1.json, .bak.2.json and so on. Earlier
// backups are never overwritten.
func FreeBackupPath(sessionPath, reportFilename string, taken func(string) (bool, error)) (string, error) {
	base := BackupPath(sessionPath, reportFilename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	candidate := base
	for i := 1; ; i++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s.%d%s", stem, i, ext)
	}
}
