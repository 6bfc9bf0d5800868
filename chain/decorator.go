// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// decorator.go — Decorator[S]: a Builder bound to the canonical *Model.

package chain

// Decorator is the handle ordinary domain makers embed when they want the
// canonical Model and chain operations in one externally visible value.
// It adds no state beyond Builder[S, *Model].
type Decorator[S any] struct {
	Builder[S, *Model]
}

// Attr stores value under key (overwrite semantics) and returns the receiver.
func (d *Decorator[S]) Attr(key string, value any) S {
	self := d.Make()
	d.Data().Set(key, value)

	return self
}

// Unset removes key if present and returns the receiver.
func (d *Decorator[S]) Unset(key string) S {
	self := d.Make()
	d.Data().Delete(key)

	return self
}

// Tag appends tags to the model. It accumulates: Tag("a").Tag("b") leaves the
// same state as Tag("a", "b").
func (d *Decorator[S]) Tag(tags ...string) S {
	self := d.Make()
	m := d.Data()
	m.tags = append(m.tags, tags...)

	return self
}

// Chainable is the canonical leaf decorator: it fixes S to itself and adds
// nothing else.
type Chainable struct {
	Decorator[*Chainable]
}

// NewChainable returns a Chainable bound to a fresh Model.
func NewChainable() *Chainable {
	return Decorate[Chainable]()
}
