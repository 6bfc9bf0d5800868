package form_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/keqiongpan/chainable/form"
)

// cmpIgnoreCaption skips the deferred caption, which has unexported state.
var cmpIgnoreCaption = cmp.Options{
	cmpopts.IgnoreFields(form.FieldModel{}, "Caption"),
}
