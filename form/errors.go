// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// errors.go — sentinel errors; wrap with %w, branch with errors.Is.

package form

import "errors"

// ErrUnknownKind indicates a field view whose kind is not field/text/choice.
var ErrUnknownKind = errors.New("form: unknown field kind")

// ErrEncode indicates that YAML encoding or decoding failed.
var ErrEncode = errors.New("form: yaml codec failed")
