// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// sender.go — frame encoding (CBOR + optional zstd) and the Sender.

package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

const (
	flagCompressed byte = 1 << 0
	headerSize          = 5 // flags + u32 length
)

// Frame is the decoded content of one sent packet.
type Frame struct {
	Headers map[string]string `cbor:"1,keyasint,omitempty"`
	Parts   []Part            `cbor:"2,keyasint"`
}

// encMode renders maps in canonical key order so equal packets produce equal
// bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("packet: cbor enc mode: %v", err))
	}
	return em
}()

// Sender writes packet frames. It holds no per-packet state; sharing one
// across goroutines is safe only if the configured writer is.
type Sender struct {
	cfg senderConfig
	enc *zstd.Encoder // nil unless compression is on
}

// NewSender resolves opts into a Sender. It fails only when the zstd encoder
// cannot be created.
func NewSender(opts ...Option) (*Sender, error) {
	s := &Sender{cfg: newSenderConfig(opts...)}
	if s.cfg.compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("NewSender: %v: %w", err, ErrCodec)
		}
		s.enc = enc
	}

	return s, nil
}

// Send encodes m as one frame and writes it. Errors wrap the package
// sentinels with a "Send:" prefix.
func (s *Sender) Send(m *PacketModel) error {
	log := s.cfg.logger
	if s.cfg.writer == nil {
		return fmt.Errorf("Send: %w", ErrNoWriter)
	}
	if len(m.Parts) == 0 {
		return fmt.Errorf("Send: %w", ErrEmptyPacket)
	}

	frame, err := s.encode(m)
	if err != nil {
		log.Warn("packet encode failed", slog.Any("error", err))
		return fmt.Errorf("Send: %w", err)
	}
	if _, err := s.cfg.writer.Write(frame); err != nil {
		log.Warn("packet write failed", slog.Any("error", err))
		return fmt.Errorf("Send: %w", err)
	}

	log.Debug("packet sent",
		slog.Int("parts", len(m.Parts)),
		slog.Int("bytes", len(frame)),
		slog.Bool("compressed", s.enc != nil))

	return nil
}

// encode builds the framed bytes for m.
func (s *Sender) encode(m *PacketModel) ([]byte, error) {
	payload, err := encMode.Marshal(Frame{Headers: m.Headers, Parts: m.Parts})
	if err != nil {
		return nil, fmt.Errorf("cbor: %v: %w", err, ErrCodec)
	}

	var flags byte
	if s.enc != nil {
		payload = s.enc.EncodeAll(payload, nil)
		flags |= flagCompressed
	}
	if len(payload) > s.cfg.maxSize {
		return nil, fmt.Errorf("%d > %d bytes: %w", len(payload), s.cfg.maxSize, ErrTooLarge)
	}

	out := make([]byte, headerSize, headerSize+len(payload))
	out[0] = flags
	binary.BigEndian.PutUint32(out[1:headerSize], uint32(len(payload)))

	return append(out, payload...), nil
}

// Decode reads one frame from r. Only WithMaxSize is consulted among opts; a
// declared payload length above it is rejected before allocating, and a
// compressed payload may not inflate beyond it either.
func Decode(r io.Reader, opts ...Option) (Frame, error) {
	cfg := newSenderConfig(opts...)

	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Frame{}, fmt.Errorf("Decode: header: %v: %w", err, ErrBadFrame)
	}
	size := binary.BigEndian.Uint32(hdr[1:])
	if uint64(size) > uint64(cfg.maxSize) {
		return Frame{}, fmt.Errorf("Decode: %d > %d bytes: %w", size, cfg.maxSize, ErrTooLarge)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, fmt.Errorf("Decode: payload: %v: %w", err, ErrBadFrame)
	}

	if hdr[0]&flagCompressed != 0 {
		// The decoder sizes a single-segment window to at least
		// MinWindowSize, so its limit cannot go lower; the exact cap is
		// checked on the output.
		limit := max(uint64(cfg.maxSize), zstd.MinWindowSize)
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(limit))
		if err != nil {
			return Frame{}, fmt.Errorf("Decode: %v: %w", err, ErrCodec)
		}
		defer dec.Close()
		if payload, err = dec.DecodeAll(payload, nil); err != nil {
			if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
				return Frame{}, fmt.Errorf("Decode: inflated > %d bytes: %w", cfg.maxSize, ErrTooLarge)
			}
			return Frame{}, fmt.Errorf("Decode: zstd: %v: %w", err, ErrCodec)
		}
		if len(payload) > cfg.maxSize {
			return Frame{}, fmt.Errorf("Decode: inflated %d > %d bytes: %w", len(payload), cfg.maxSize, ErrTooLarge)
		}
	}

	var f Frame
	if err := cbor.Unmarshal(payload, &f); err != nil {
		return Frame{}, fmt.Errorf("Decode: cbor: %v: %w", err, ErrCodec)
	}

	return f, nil
}
