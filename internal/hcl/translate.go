package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/specialistvlad/flowdoc/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateForm merges one decoded form block into dst. The first non-empty
// title and intro win; section names must be unique across all blocks.
func (l *Loader) translateForm(ctx context.Context, dst *form.Form, block *schema.Form) error {
	if dst.Title == "" {
		dst.Title = strings.TrimSpace(block.Title)
	}
	if dst.Intro == "" {
		dst.Intro = strings.TrimRight(block.Intro, "\n")
	}

	for _, s := range block.Sections {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("section name must not be empty")
		}
		if dst.Section(name) != nil {
			return fmt.Errorf("duplicate section %q", name)
		}

		questions, err := translateQuestions(ctx, s.Questions, name)
		if err != nil {
			return err
		}
		dst.Sections = append(dst.Sections, &form.Section{Name: name, Questions: questions})
	}
	return nil
}

// translateQuestions evaluates a `questions` expression and converts it to a
// list of non-empty strings.
func translateQuestions(ctx context.Context, expr hcl.Expression, section string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid questions in section %q: %w", section, diags)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, fmt.Errorf("questions in section %q must be a known, non-null list", section)
	}

	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("questions in section %q must be a list of strings: %w", section, err)
	}
	if list.LengthInt() == 0 {
		return nil, fmt.Errorf("section %q has no questions", section)
	}

	out := make([]string, 0, list.LengthInt())
	for it := list.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return nil, fmt.Errorf("question %d in section %q is null", len(out)+1, section)
		}
		text := strings.TrimSpace(v.AsString())
		if text == "" {
			return nil, fmt.Errorf("question %d in section %q is empty", len(out)+1, section)
		}
		out = append(out, text)
	}

	logger.Debug("Translated section.", "section", section, "questions", len(out))
	return out, nil
}
