// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package form

import (
	"context"
	_ "embed"
)

// DefaultSource is the HCL text of the built-in service-flow form.
//
//go:embed default.hcl
var DefaultSource []byte

// DefaultSourceName is the file name reported in diagnostics for DefaultSource.
const DefaultSourceName = "default.hcl"

// Loader is the interface for a format-specific form loader.
type Loader interface {
	// Load reads the form from the given files or directories.
	Load(ctx context.Context, paths ...string) (*Form, error)
	// LoadDefault decodes the built-in form.
	LoadDefault(ctx context.Context) (*Form, error)
}

// Form is an ordered questionnaire definition.
type Form struct {
	Title    string
	Intro    string
	Sections []*Section
}

// Section is a named, ordered group of question texts.
type Section struct {
	Name      string
	Questions []string
}

// Question is one entry of the flattened form.
type Question struct {
	Section string
	Text    string
}

// Questions flattens the form in definition order.
func (f *Form) Questions() []Question {
	if f == nil {
		return nil
	}
	var out []Question
	for _, s := range f.Sections {
		for _, q := range s.Questions {
			out = append(out, Question{Section: s.Name, Text: q})
		}
	}
	return out
}

// Len returns the number of questions across all sections.
func (f *Form) Len() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, s := range f.Sections {
		n += len(s.Questions)
	}
	return n
}

// Section returns the section with the given name, or nil.
func (f *Form) Section(name string) *Section {
	if f == nil {
		return nil
	}
	for _, s := range f.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}
