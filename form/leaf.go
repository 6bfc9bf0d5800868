// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// leaf.go — terminal leaf types. They add no state; they only fix S.

package form

import "github.com/keqiongpan/chainable/chain"

// Field is a plain field.
type Field struct {
	FieldMaker[*Field, *FieldModel]
}

// NewField returns a Field named name.
func NewField(name string) *Field {
	return chain.New[Field](&FieldModel{}).Name(name)
}

// TextField is a free-text field.
type TextField struct {
	TextFieldMaker[*TextField, *TextFieldModel]
}

// NewTextField returns a TextField named name.
func NewTextField(name string) *TextField {
	return chain.New[TextField](&TextFieldModel{}).Name(name)
}

// ChoiceField is a field with a fixed list of options.
type ChoiceField struct {
	ChoiceFieldMaker[*ChoiceField, *ChoiceFieldModel]
}

// NewChoiceField returns a ChoiceField named name.
func NewChoiceField(name string) *ChoiceField {
	return chain.New[ChoiceField](&ChoiceFieldModel{}).Name(name)
}
