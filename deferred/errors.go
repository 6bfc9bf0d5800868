// SPDX-License-Identifier: MIT
// Package: chainable/deferred
//
// errors.go — sentinel errors for deferred values.

package deferred

import "errors"

// ErrContextGone indicates that a Lazy value was resolved after its weakly
// referenced context had been collected. Recoverable: the caller decides on a
// fallback (see Value.Or).
var ErrContextGone = errors.New("deferred: context gone")

// ErrUnset indicates Get on the zero Value, which holds neither a value nor a
// closure.
var ErrUnset = errors.New("deferred: value not set")
