// SPDX-License-Identifier: MIT
// Package: chainable/deferred
//
// doc.go — package overview.

// Package deferred implements values that are either computed once (Eager) or
// recomputed on every access against a weakly held context (Lazy).
//
// The mode is chosen explicitly at the call site:
//
//	deferred.Eval(ctx, fn)      // bare expression: fn(ctx) now, cached forever
//	deferred.Recompute(ctx, fn) // recompute block: fn(ctx) on every Resolve
//	deferred.New(mode, ctx, fn) // mode picked by a runtime marker
//	deferred.Of[T, C](v)        // eager constant, no context at all
//
// A Lazy value stores a weak.Pointer to its context, so a builder that keeps a
// "compute my label from my state" closure never keeps that state alive. Once
// the context has been collected, Resolve reports an absent result and Get
// returns ErrContextGone; nothing panics and nothing is resurrected.
//
// Values are immutable after construction and safe to copy.
package deferred
