// Package schema holds the gohcl decoding targets for form definition files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// FormFile represents the top-level structure of a form definition file.
type FormFile struct {
	Forms []*Form  `hcl:"form,block"`
	Body  hcl.Body `hcl:",remain"`
}

// Form represents a `form` block. A definition spread across several files
// contributes one block per file; their sections are concatenated in file order.
type Form struct {
	Title    string     `hcl:"title,optional"`
	Intro    string     `hcl:"intro,optional"`
	Sections []*Section `hcl:"section,block"`
}

// Section represents a `section "<name>"` block. gohcl never requires an
// hcl.Expression field, so the body is kept whole and checked against
// sectionSchema by Decode.
type Section struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`

	// Questions is set by Decode and kept as a raw expression so its type
	// can be checked and converted with cty.
	Questions hcl.Expression
}

var sectionSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "questions", Required: true},
	},
}

// Decode extracts the required questions attribute from the section body.
func (s *Section) Decode() hcl.Diagnostics {
	content, diags := s.Body.Content(sectionSchema)
	if diags.HasErrors() {
		return diags
	}
	s.Questions = content.Attributes["questions"].Expr
	return diags
}
