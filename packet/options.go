// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// options.go — functional options for Sender and Decode.
//
// Contract:
//   • Options resolve into a value-typed senderConfig, in order, last wins.
//   • Option constructors panic on nil or meaningless input.
//
// Deterministic defaults:
//   • writer      = nil          (Send fails with ErrNoWriter)
//   • logger      = discard
//   • compression = off
//   • maxSize     = 16 MiB

package packet

import (
	"io"
	"log/slog"
	"math"
)

const defaultMaxSize = 16 << 20

type senderConfig struct {
	writer   io.Writer
	logger   *slog.Logger
	compress bool
	maxSize  int
}

// Option customizes a Sender (and the size limit of Decode).
type Option func(*senderConfig)

// WithWriter sets the destination of frames. Panics on nil.
func WithWriter(w io.Writer) Option {
	if w == nil {
		panic("packet: WithWriter(nil)")
	}
	return func(c *senderConfig) { c.writer = w }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("packet: WithLogger(nil)")
	}
	return func(c *senderConfig) { c.logger = l }
}

// WithCompression toggles zstd compression of the CBOR payload.
func WithCompression(on bool) Option {
	return func(c *senderConfig) { c.compress = on }
}

// WithMaxSize caps the payload size in bytes. Panics if n < 1 or if n does
// not fit the u32 length prefix.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic("packet: WithMaxSize(n<1)")
	}
	if uint64(n) > math.MaxUint32 {
		panic("packet: WithMaxSize(n>MaxUint32)")
	}
	return func(c *senderConfig) { c.maxSize = n }
}

func newSenderConfig(opts ...Option) senderConfig {
	cfg := senderConfig{
		logger:  slog.New(slog.DiscardHandler),
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
