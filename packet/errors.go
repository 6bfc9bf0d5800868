// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// errors.go — sentinel errors; Send records them wrapped with method context.

package packet

import "errors"

var (
	// ErrEmptyPacket indicates Send on a packet without parts.
	ErrEmptyPacket = errors.New("packet: no parts to send")

	// ErrTooLarge indicates an encoded frame above the configured max size.
	ErrTooLarge = errors.New("packet: frame exceeds max size")

	// ErrNoWriter indicates a Sender built without WithWriter.
	ErrNoWriter = errors.New("packet: sender has no writer")

	// ErrNilSender indicates Send(nil).
	ErrNilSender = errors.New("packet: nil sender")

	// ErrCodec indicates a CBOR or zstd failure.
	ErrCodec = errors.New("packet: codec failure")

	// ErrBadFrame indicates a truncated or malformed frame on Decode.
	ErrBadFrame = errors.New("packet: malformed frame")
)
