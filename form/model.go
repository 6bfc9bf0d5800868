// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// model.go — plain field models. None of them references a maker.

package form

import "github.com/keqiongpan/chainable/deferred"

// FieldModel is the state shared by every field kind.
type FieldModel struct {
	Name     string
	Title    string
	Value    string
	Required bool
	// Caption is either fixed text or recomputed from the field on access.
	Caption deferred.Value[string, FieldModel]
}

// Field returns m. Embedding models promote it, which is how FieldMaker
// reaches its slice of any derived model.
func (m *FieldModel) Field() *FieldModel { return m }

// FieldData is satisfied by *FieldModel and by pointers to every model that
// embeds it.
type FieldData interface {
	Field() *FieldModel
}

// TextFieldModel adds a length limit and a placeholder.
type TextFieldModel struct {
	FieldModel
	MaxLength   int // 0 = unlimited
	Placeholder string
}

// Text returns m.
func (m *TextFieldModel) Text() *TextFieldModel { return m }

// TextFieldData is satisfied by *TextFieldModel and its embedders.
type TextFieldData interface {
	FieldData
	Text() *TextFieldModel
}

// ChoiceFieldModel adds a list of options.
type ChoiceFieldModel struct {
	FieldModel
	Options  []string
	Multiple bool
}

// Choice returns m.
func (m *ChoiceFieldModel) Choice() *ChoiceFieldModel { return m }

// ChoiceFieldData is satisfied by *ChoiceFieldModel and its embedders.
type ChoiceFieldData interface {
	FieldData
	Choice() *ChoiceFieldModel
}
