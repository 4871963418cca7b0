package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/specialistvlad/flowdoc/internal/fsutil"
	"github.com/specialistvlad/flowdoc/internal/schema"
)

// ErrEmptyForm is returned when the loaded files define no questions.
var ErrEmptyForm = errors.New("form defines no questions")

// Loader is the HCL-specific implementation of the form.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL form loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ form.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths and merges their form blocks
// in discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*form.Form, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL form loader started.", "path_count", len(paths))

	var files []string
	seen := make(map[string]struct{})
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	result := &form.Form{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, result, hclFile, file); err != nil {
			return nil, err
		}
	}

	return l.finish(ctx, result)
}

// LoadDefault decodes the form embedded in the binary.
func (l *Loader) LoadDefault(ctx context.Context) (*form.Form, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(form.DefaultSource, form.DefaultSourceName)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse built-in form: %w", diags)
	}

	result := &form.Form{}
	if err := l.decodeInto(ctx, result, hclFile, form.DefaultSourceName); err != nil {
		return nil, err
	}
	return l.finish(ctx, result)
}

func (l *Loader) decodeInto(ctx context.Context, dst *form.Form, file *hcl.File, name string) error {
	var root schema.FormFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	for _, block := range root.Forms {
		for _, sec := range block.Sections {
			if diags := sec.Decode(); diags.HasErrors() {
				return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
			}
		}
	}

	for _, block := range root.Forms {
		if err := l.translateForm(ctx, dst, block); err != nil {
			return fmt.Errorf("in %s: %w", name, err)
		}
	}
	return nil
}

func (l *Loader) finish(ctx context.Context, f *form.Form) (*form.Form, error) {
	if f.Len() == 0 {
		return nil, ErrEmptyForm
	}
	ctxlog.FromContext(ctx).Debug("HCL form loading complete.", "sections", len(f.Sections), "questions", f.Len())
	return f, nil
}
