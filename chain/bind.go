// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// bind.go — leaf binding (generic-parameter collapse).
//
// The leaf type L must embed some maker whose Builder is instantiated with *L.
// Bind/New express that as the constraint S interface{ *L; binder[S, D] }:
// S is inferred as *L, and *L only satisfies binder[*L, D] when the promoted
// bind method takes *L itself. Type arguments can therefore be reduced to the
// leaf alone:
//
//	f := chain.New[TextField](&TextFieldModel{})
//
// Failure modes are compile errors at the call site:
//   - leaf embeds Builder[*Other, D]          → *L does not satisfy the constraint;
//   - leaf embeds another leaf to extend it   → promoted bind takes the inner leaf;
//   - two builders at the same embedding depth → bind is ambiguous, not promoted.

package chain

// binder is satisfied only through a promoted Builder.bind. It is unexported so
// that no type outside this package can satisfy it by hand.
type binder[S any, D any] interface {
	bind(self S, data D) bool
}

// Bind binds an already allocated leaf to data and returns it. Use it when the
// leaf lives inside another value (a struct field, an array element) rather
// than in its own allocation.
//
// Panics (wrapping ErrNilLeaf or ErrAlreadyBound) on programmer error.
// Complexity: O(1).
func Bind[L any, S interface {
	*L
	binder[S, D]
}, D any](leaf S, data D) S {
	if (*L)(leaf) == nil {
		chainPanic("Bind", ErrNilLeaf)
	}
	if !leaf.bind(leaf, data) {
		chainPanic("Bind", ErrAlreadyBound)
	}

	return leaf
}

// New allocates a zero L, binds it to data and returns the leaf handle.
// Complexity: O(1).
func New[L any, S interface {
	*L
	binder[S, D]
}, D any](data D) S {
	return Bind[L, S, D](S(new(L)), data)
}

// Decorate allocates a zero L bound to a fresh Model. L must embed
// Decorator[*L] (directly or through intermediate makers).
// Complexity: O(1).
func Decorate[L any, S interface {
	*L
	binder[S, *Model]
}]() S {
	return New[L, S, *Model](NewModel())
}
