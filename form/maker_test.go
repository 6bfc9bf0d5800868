package form_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keqiongpan/chainable/form"
)

func TestTextField_MixesInheritedAndOwnOps(t *testing.T) {
	t.Parallel()

	f := form.NewTextField("name")
	var got *form.TextField = f.Title("Name").LimitBy(4).Required(true).Placeholder("e.g. Ada").Value("Ada")

	require.Same(t, f, got)
	want := form.TextFieldModel{
		FieldModel:  form.FieldModel{Name: "name", Title: "Name", Value: "Ada", Required: true},
		MaxLength:   4,
		Placeholder: "e.g. Ada",
	}
	if diff := cmp.Diff(want, *f.Data(), cmpIgnoreCaption); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestTextField_Remaining(t *testing.T) {
	t.Parallel()

	f := form.NewTextField("n")
	_, ok := f.Remaining()
	assert.False(t, ok, "unlimited field has no remaining count")

	n, ok := f.LimitBy(4).Value("né").Remaining()
	require.True(t, ok)
	assert.Equal(t, 2, n, "runes, not bytes")

	n, _ = f.Value("overflow").Remaining()
	assert.Equal(t, -4, n)

	f.LimitBy(-3)
	assert.Equal(t, 0, f.Data().MaxLength)
}

func TestField_OverwriteKeepsLast(t *testing.T) {
	t.Parallel()

	f := form.NewField("a").Title("one").Title("two").Name("b")
	assert.Equal(t, "two", f.Data().Title)
	assert.Equal(t, "b", f.Data().Name)
}

func TestChoiceField_OptionAccumulates(t *testing.T) {
	t.Parallel()

	twice := form.NewChoiceField("c").Option("a").Option("b", "c")
	once := form.NewChoiceField("c").Option("a", "b", "c")
	assert.Equal(t, once.Data().Options, twice.Data().Options)

	twice.ClearOptions().Multiple(true)
	assert.Empty(t, twice.Data().Options)
	assert.True(t, twice.Data().Multiple)
}

func TestCaption_FixedAndRecomputed(t *testing.T) {
	t.Parallel()

	f := form.NewTextField("bio").Caption("fixed")
	assert.Equal(t, "fixed", f.CaptionText())

	f.CaptionFunc(func(m *form.FieldModel) string {
		return fmt.Sprintf("%d chars", len(m.Value))
	})
	assert.Equal(t, "0 chars", f.CaptionText())

	f.Value("hello")
	assert.Equal(t, "5 chars", f.CaptionText(), "lazy caption follows the current state")

	assert.Equal(t, "", form.NewField("plain").CaptionText())
}

func TestLeaves_AreFieldData(t *testing.T) {
	t.Parallel()

	var fields []form.FieldData = []form.FieldData{
		form.NewField("a"),
		form.NewTextField("b"),
		form.NewChoiceField("c"),
	}
	kinds := make([]string, 0, len(fields))
	for _, f := range fields {
		kinds = append(kinds, form.Snapshot(f).Kind)
	}
	assert.Equal(t, []string{form.KindField, form.KindText, form.KindChoice}, kinds)
}
