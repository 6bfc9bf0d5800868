// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// maker.go — generic makers, one per model level.
//
// Each maker keeps S generic so a leaf further down can collapse it. Ops set a
// field and return the receiver; Option is the only accumulating op.

package form

import (
	"unicode/utf8"

	"github.com/keqiongpan/chainable/chain"
	"github.com/keqiongpan/chainable/deferred"
)

// FieldMaker declares the operations shared by all fields.
type FieldMaker[S any, D FieldData] struct {
	chain.Builder[S, D]
}

// Name sets the field name.
func (m *FieldMaker[S, D]) Name(name string) S {
	return m.Apply(func(d D) { d.Field().Name = name })
}

// Title sets the human-readable title.
func (m *FieldMaker[S, D]) Title(title string) S {
	return m.Apply(func(d D) { d.Field().Title = title })
}

// Value sets the current value.
func (m *FieldMaker[S, D]) Value(value string) S {
	return m.Apply(func(d D) { d.Field().Value = value })
}

// Required marks the field as required or optional.
func (m *FieldMaker[S, D]) Required(required bool) S {
	return m.Apply(func(d D) { d.Field().Required = required })
}

// Caption sets a fixed caption.
func (m *FieldMaker[S, D]) Caption(text string) S {
	return m.Apply(func(d D) { d.Field().Caption = deferred.Of[string, FieldModel](text) })
}

// CaptionFunc sets a caption recomputed from the field state on every
// resolution. The field is held weakly. Panics on nil fn.
func (m *FieldMaker[S, D]) CaptionFunc(fn func(*FieldModel) string) S {
	return m.Apply(func(d D) { d.Field().Caption = deferred.Recompute(d.Field(), fn) })
}

// Field exposes the shared model, which makes every maker (and leaf) a
// FieldData itself.
func (m *FieldMaker[S, D]) Field() *FieldModel {
	return m.Data().Field()
}

// CaptionText resolves the caption; empty when none is set.
func (m *FieldMaker[S, D]) CaptionText() string {
	return m.Data().Field().Caption.Or("")
}

// TextFieldMaker adds text-specific operations on top of FieldMaker.
type TextFieldMaker[S any, D TextFieldData] struct {
	FieldMaker[S, D]
}

// LimitBy sets the maximum value length in runes; 0 removes the limit.
// Negative limits are clamped to 0.
func (m *TextFieldMaker[S, D]) LimitBy(maxLength int) S {
	if maxLength < 0 {
		maxLength = 0
	}
	return m.Apply(func(d D) { d.Text().MaxLength = maxLength })
}

// Placeholder sets the hint shown while the value is empty.
func (m *TextFieldMaker[S, D]) Placeholder(text string) S {
	return m.Apply(func(d D) { d.Text().Placeholder = text })
}

// Text exposes the text model; leaves satisfy TextFieldData through it.
func (m *TextFieldMaker[S, D]) Text() *TextFieldModel {
	return m.Data().Text()
}

// Remaining reports how many runes may still be typed. ok is false when the
// field is unlimited; n is negative when the value already overflows.
func (m *TextFieldMaker[S, D]) Remaining() (n int, ok bool) {
	t := m.Data().Text()
	if t.MaxLength == 0 {
		return 0, false
	}

	return t.MaxLength - utf8.RuneCountInString(t.Value), true
}

// ChoiceFieldMaker adds option handling on top of FieldMaker.
type ChoiceFieldMaker[S any, D ChoiceFieldData] struct {
	FieldMaker[S, D]
}

// Option appends options. It accumulates: Option("a").Option("b") equals
// Option("a", "b").
func (m *ChoiceFieldMaker[S, D]) Option(options ...string) S {
	return m.Apply(func(d D) {
		c := d.Choice()
		c.Options = append(c.Options, options...)
	})
}

// Choice exposes the choice model; leaves satisfy ChoiceFieldData through it.
func (m *ChoiceFieldMaker[S, D]) Choice() *ChoiceFieldModel {
	return m.Data().Choice()
}

// ClearOptions drops every option.
func (m *ChoiceFieldMaker[S, D]) ClearOptions() S {
	return m.Apply(func(d D) { d.Choice().Options = nil })
}

// Multiple toggles multi-selection.
func (m *ChoiceFieldMaker[S, D]) Multiple(multiple bool) S {
	return m.Apply(func(d D) { d.Choice().Multiple = multiple })
}
