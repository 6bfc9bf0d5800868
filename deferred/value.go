// SPDX-License-Identifier: MIT
// Package: chainable/deferred
//
// value.go — Value[T, C], the eager/lazy tagged variant.
//
// Representation:
//   - Eager: value holds the cached T, set=true.
//   - Lazy:  ctx is a non-owning weak.Pointer[C], fn recomputes T from *C.
//
// The package never stores a strong *C. Resolve upgrades the weak pointer for
// the duration of a single fn call only.

package deferred

import "weak"

// Value is either a cached T or a closure over a weakly held *C.
// The zero Value is unset: Resolve reports absent, Get returns ErrUnset.
type Value[T any, C any] struct {
	mode  Mode
	set   bool
	value T
	ctx   weak.Pointer[C]
	fn    func(*C) T
}

// Of returns an eager Value holding v. No context is involved.
// Complexity: O(1).
func Of[T any, C any](v T) Value[T, C] {
	return Value[T, C]{mode: Eager, set: true, value: v}
}

// Eval evaluates fn against ctx once, now, and caches the result. Later
// changes to ctx are not observed. Panics on nil fn.
// Complexity: one call of fn.
func Eval[T any, C any](ctx *C, fn func(*C) T) Value[T, C] {
	if fn == nil {
		panic("deferred: Eval(nil fn)")
	}

	return Of[T, C](fn(ctx))
}

// Recompute stores fn and a weak reference to ctx; every Resolve re-runs fn
// against the current ctx. A nil ctx yields a Value that is always absent.
// Panics on nil fn.
//
// fn must not capture ctx itself, or the closure keeps it alive. ctx should
// be its own heap object: a small pointer-free C (under 16 bytes) may be
// tiny-allocated alongside unrelated objects and is then only reclaimed with
// them, so ErrContextGone may never be observed.
// Complexity: O(1); each Resolve costs one call of fn.
func Recompute[T any, C any](ctx *C, fn func(*C) T) Value[T, C] {
	if fn == nil {
		panic("deferred: Recompute(nil fn)")
	}
	v := Value[T, C]{mode: Lazy, set: true, fn: fn}
	if ctx != nil {
		v.ctx = weak.Make(ctx)
	}

	return v
}

// New dispatches to Eval or Recompute according to mode. An unknown mode is
// treated as Eager.
func New[T any, C any](mode Mode, ctx *C, fn func(*C) T) Value[T, C] {
	if mode == Lazy {
		return Recompute(ctx, fn)
	}

	return Eval(ctx, fn)
}

// Mode reports the evaluation mode fixed at construction.
func (v Value[T, C]) Mode() Mode {
	return v.mode
}

// IsZero reports whether v is the unset zero Value.
func (v Value[T, C]) IsZero() bool {
	return !v.set
}

// Alive reports whether Resolve can currently produce a result: always true
// for a set eager Value, and true for a lazy one while its context exists.
func (v Value[T, C]) Alive() bool {
	if !v.set {
		return false
	}
	if v.mode != Lazy {
		return true
	}

	return v.ctx.Value() != nil
}

// Resolve returns the value and whether it is present.
//   - Eager: the cached value, always present.
//   - Lazy:  fn applied to the live context, absent once it is gone.
//   - Zero:  absent.
func (v Value[T, C]) Resolve() (T, bool) {
	var zero T
	if !v.set {
		return zero, false
	}
	if v.mode != Lazy {
		return v.value, true
	}
	ctx := v.ctx.Value()
	if ctx == nil {
		return zero, false
	}

	return v.fn(ctx), true
}

// Get is Resolve with the absence reason spelled out: ErrUnset for the zero
// Value, ErrContextGone for a lazy Value whose context was collected.
func (v Value[T, C]) Get() (T, error) {
	if !v.set {
		var zero T
		return zero, ErrUnset
	}
	out, ok := v.Resolve()
	if !ok {
		return out, ErrContextGone
	}

	return out, nil
}

// Or returns the resolved value, or fallback when it is absent.
func (v Value[T, C]) Or(fallback T) T {
	if out, ok := v.Resolve(); ok {
		return out
	}

	return fallback
}
