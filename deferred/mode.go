// SPDX-License-Identifier: MIT
// Package: chainable/deferred
//
// mode.go — evaluation modes of a Value.

package deferred

import "strconv"

// Mode selects how a Value produces its result. It is fixed at construction.
type Mode uint8

const (
	// Eager values are computed once and cached.
	Eager Mode = iota
	// Lazy values are recomputed against the live context on every access.
	Lazy
)

// String returns "eager", "lazy" or "mode(N)".
func (m Mode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}
