// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// codec.go — resolved views of fields and their YAML encoding.

package form

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Field kinds as they appear in views.
const (
	KindField  = "field"
	KindText   = "text"
	KindChoice = "choice"
)

// FieldView is a plain, fully resolved copy of a field. Deferred captions are
// evaluated at snapshot time.
type FieldView struct {
	Kind        string   `yaml:"kind"`
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title,omitempty"`
	Value       string   `yaml:"value,omitempty"`
	Required    bool     `yaml:"required,omitempty"`
	Caption     string   `yaml:"caption,omitempty"`
	MaxLength   int      `yaml:"maxLength,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	Multiple    bool     `yaml:"multiple,omitempty"`
}

// Snapshot resolves d into a FieldView. Models, makers and leaves are all
// FieldData; the kind follows whether d also implements TextFieldData or
// ChoiceFieldData.
func Snapshot(d FieldData) FieldView {
	f := d.Field()
	v := FieldView{
		Kind:     KindField,
		Name:     f.Name,
		Title:    f.Title,
		Value:    f.Value,
		Required: f.Required,
		Caption:  f.Caption.Or(""),
	}
	switch x := d.(type) {
	case TextFieldData:
		t := x.Text()
		v.Kind, v.MaxLength, v.Placeholder = KindText, t.MaxLength, t.Placeholder
	case ChoiceFieldData:
		c := x.Choice()
		v.Kind, v.Multiple = KindChoice, c.Multiple
		v.Options = append([]string(nil), c.Options...)
	}

	return v
}

// Encode writes the snapshots of fields as one YAML document:
//
//	fields:
//	  - kind: text
//	    name: login
//	    ...
func Encode(w io.Writer, fields []FieldData, opts ...EncodeOption) error {
	cfg := newEncodeConfig(opts...)

	views := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		views = append(views, Snapshot(f))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(cfg.indent)
	if err := enc.Encode(map[string][]FieldView{cfg.rootKey: views}); err != nil {
		return fmt.Errorf("Encode: %v: %w", err, ErrEncode)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("Encode: %v: %w", err, ErrEncode)
	}

	return nil
}

// Load reads a document written by Encode and rebuilds its fields as leaves
// (*Field, *TextField, *ChoiceField). Captions come back as fixed text.
func Load(r io.Reader, opts ...EncodeOption) ([]FieldData, error) {
	cfg := newEncodeConfig(opts...)

	var doc map[string][]FieldView
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("Load: %v: %w", err, ErrEncode)
	}

	views := doc[cfg.rootKey]
	out := make([]FieldData, 0, len(views))
	for i, v := range views {
		leaf, err := fromView(v)
		if err != nil {
			return nil, fmt.Errorf("Load: field %d (%q): %w", i, v.Name, err)
		}
		out = append(out, leaf)
	}

	return out, nil
}

// fromView rebuilds a leaf from v.
func fromView(v FieldView) (FieldData, error) {
	switch v.Kind {
	case KindField, "":
		return applyCommon(NewField(v.Name), v), nil
	case KindText:
		return applyCommon(NewTextField(v.Name), v).
			LimitBy(v.MaxLength).
			Placeholder(v.Placeholder), nil
	case KindChoice:
		return applyCommon(NewChoiceField(v.Name), v).
			Option(v.Options...).
			Multiple(v.Multiple), nil
	default:
		return nil, fmt.Errorf("kind %q: %w", v.Kind, ErrUnknownKind)
	}
}

// commonMaker is the FieldMaker surface every leaf exposes, returning S.
type commonMaker[S any] interface {
	Title(string) S
	Value(string) S
	Required(bool) S
	Caption(string) S
}

// applyCommon sets the shared attributes of v on leaf and returns it.
func applyCommon[S commonMaker[S]](leaf S, v FieldView) S {
	leaf.Title(v.Title).Value(v.Value).Required(v.Required)
	if v.Caption != "" {
		leaf.Caption(v.Caption)
	}

	return leaf
}
