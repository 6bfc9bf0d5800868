// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// builder.go — Builder[S, D], the generic core every maker embeds.
//
// Contract:
//   - A Builder holds exactly one D and the bound self handle S.
//   - Chain operations perform their effect and return Make(); never a copy.
//   - Repeating an operation overwrites, unless the operation documents that it
//     accumulates (append-like).

package chain

// Builder is the embeddable maker core, generic over the final handle type S
// and the wrapped data type D.
//
// D is usually a pointer to a model (reference-like); value-like models are
// stored inline and mutated through Update. The zero value is unbound and must
// not be used to chain; embed it and construct the leaf with New or Bind.
type Builder[S any, D any] struct {
	self  S
	data  D
	bound bool
}

// bind attaches self and data once. It reports false when already bound.
// The method is promoted to every embedding leaf and is what New and Bind
// constrain on.
func (b *Builder[S, D]) bind(self S, data D) bool {
	if b.bound {
		return false
	}
	b.self, b.data, b.bound = self, data, true

	return true
}

// Data returns the wrapped state. It is read-only from the chaining point of
// view: mutation belongs to the declared chain operations.
// Complexity: O(1).
func (b *Builder[S, D]) Data() D {
	return b.data
}

// Make returns the builder itself retyped as S. Use it to pivot from plain
// data access back into a chain, and as the return value of every chain op.
// Panics (wrapping ErrUnbound) when the builder was never bound.
// Complexity: O(1).
func (b *Builder[S, D]) Make() S {
	if !b.bound {
		chainPanic("Make", ErrUnbound)
	}

	return b.self
}

// Bound reports whether the builder went through Bind.
func (b *Builder[S, D]) Bound() bool {
	return b.bound
}

// Apply runs fn against the wrapped data and returns the receiver. It suits
// reference-like D, where fn mutates through the pointer. A nil fn is a no-op.
func (b *Builder[S, D]) Apply(fn func(D)) S {
	self := b.Make()
	if fn != nil {
		fn(b.data)
	}

	return self
}

// Update runs fn against the stored data in place and returns the receiver.
// It suits value-like D. A nil fn is a no-op.
func (b *Builder[S, D]) Update(fn func(*D)) S {
	self := b.Make()
	if fn != nil {
		fn(&b.data)
	}

	return self
}
