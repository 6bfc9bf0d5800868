// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// doc.go — package overview.

// Package form is a field-model hierarchy built on chain and deferred.
//
// Data and operations vary independently, level by level:
//
//	FieldModel        ← FieldMaker[S, D FieldData]            ← Field
//	TextFieldModel    ← TextFieldMaker[S, D TextFieldData]    ← TextField
//	ChoiceFieldModel  ← ChoiceFieldMaker[S, D ChoiceFieldData] ← ChoiceField
//
// Every operation inherited from FieldMaker returns the concrete leaf, so
//
//	form.NewTextField("name").Title("Name").LimitBy(4).Required(true)
//
// type-checks as *TextField at each step. Captions may be fixed text or a
// closure recomputed from the field's current state; the closure only holds
// the field weakly.
//
// Snapshot resolves a field into a plain FieldView; Encode and Load move views
// to and from YAML (gopkg.in/yaml.v3).
package form
