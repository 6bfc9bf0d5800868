// Package chainable is a toolkit for type-safe fluent (chainable)
// configuration APIs over plain mutable models.
//
// What is in the box?
//
//	chain/    — Builder[S, D], Decorator[S], Model and leaf binding (New/Bind):
//	            operations inherited from any ancestor maker return the exact leaf
//	deferred/ — Value[T, C]: eager (computed once) or lazy (recomputed against a
//	            weakly held context, absent once the context is gone)
//	form/     — a two-level field hierarchy (Field, TextField, ChoiceField) with
//	            deferred captions and YAML snapshots
//	packet/   — a multipart packet maker whose chain ends in Send (CBOR frames,
//	            optional zstd, slog logging)
//
// Quick example:
//
//	type FieldMaker[S any, D FieldData] struct{ chain.Builder[S, D] }
//	type TextFieldMaker[S any, D TextFieldData] struct{ FieldMaker[S, D] }
//	type TextField struct{ TextFieldMaker[*TextField, *TextFieldModel] }
//
//	form.NewTextField("name").Title("Name").LimitBy(4) // *TextField at every step
//
// Everything is synchronous and single-owner; nothing here locks.
//
//	go get github.com/keqiongpan/chainable
package chainable
