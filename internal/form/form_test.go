package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestQuestions_FlattensInDefinitionOrder(t *testing.T) {
	t.Parallel()

	f := &Form{Sections: []*Section{
		{Name: "B", Questions: []string{"b1", "b2"}},
		{Name: "A", Questions: []string{"a1"}},
	}}

	want := []Question{
		{Section: "B", Text: "b1"},
		{Section: "B", Text: "b2"},
		{Section: "A", Text: "a1"},
	}
	if diff := cmp.Diff(want, f.Questions()); diff != "" {
		t.Errorf("Questions() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, f.Len())
}

func TestNilForm(t *testing.T) {
	t.Parallel()

	var f *Form
	assert.Nil(t, f.Questions())
	assert.Zero(t, f.Len())
	assert.Nil(t, f.Section("x"))
}

func TestSection_Lookup(t *testing.T) {
	t.Parallel()

	f := &Form{Sections: []*Section{{Name: "Core"}, {Name: "Tests"}}}
	assert.Equal(t, "Tests", f.Section("Tests").Name)
	assert.Nil(t, f.Section("Missing"))
}

func TestDefaultSource_Embedded(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, DefaultSource)
	assert.Contains(t, string(DefaultSource), `section "Core Business Logic"`)
}
