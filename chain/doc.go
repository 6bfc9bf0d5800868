// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// doc.go — package overview.

// Package chain provides the generic building blocks for type-safe fluent
// (chainable) configuration APIs.
//
// Three roles cooperate:
//
//   - Model:     plain mutable state. It never references a builder.
//   - Builder:   Builder[S, D] wraps exactly one D and exposes chain operations
//     that mutate it and return S, the final (leaf) handle type.
//   - Decorator: Decorator[S] is a Builder bound to the canonical *Model, the
//     handle ordinary domain builders embed when they want attributes and
//     chain operations in one value.
//
// Leaf binding:
//
// A leaf type fixes the S parameter of every ancestor to itself by embedding
// the ancestor instantiated with its own pointer type (the curiously recurring
// generic pattern):
//
//	type FieldMaker[S any, D FieldData] struct{ chain.Builder[S, D] }
//	type TextFieldMaker[S any, D TextFieldData] struct{ FieldMaker[S, D] }
//	type TextField struct{ TextFieldMaker[*TextField, *TextFieldModel] }
//
//	f := chain.New[TextField](&TextFieldModel{})
//	f.Title("Name").LimitBy(4).Title("Full name") // every step is *TextField
//
// New and Bind only accept S = *L when L's promoted binding method takes *L
// itself. A leaf that binds the wrong type, a struct that embeds a leaf in an
// attempt to extend it, and a struct that embeds two builders at the same depth
// are all rejected by the compiler at the call site. Nothing is generated and
// the leaf adds no storage beyond its ancestors.
//
// Concurrency:
//
// A builder is single-owner. Chain expressions run strictly left to right and
// every effect is visible to the next call. The package defines no locking;
// callers sharing a builder across goroutines must synchronize externally.
package chain
