// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// errors.go — sentinel errors for the chain package.
//
// Binding and terminality mistakes are compile-time errors (see doc.go) and
// have no runtime representation. What remains are programmer errors caught
// when a builder is used before it was bound; they surface as panics whose
// message wraps one of the sentinels below, so recover()-based harnesses can
// still branch with errors.Is.

package chain

import (
	"errors"
	"fmt"
)

// ErrUnbound indicates a chain operation on a builder that was never passed
// through Bind, New or Decorate (e.g. a zero-value leaf).
var ErrUnbound = errors.New("chain: builder is not bound")

// ErrAlreadyBound indicates a second Bind on the same leaf. A builder owns
// exactly one data instance for its whole lifetime.
var ErrAlreadyBound = errors.New("chain: builder is already bound")

// ErrNilLeaf indicates Bind was called with a nil leaf pointer.
var ErrNilLeaf = errors.New("chain: nil leaf")

// chainPanic panics with an error wrapping sentinel and prefixed by method.
func chainPanic(method string, sentinel error) {
	panic(fmt.Errorf("%s: %w", method, sentinel))
}
