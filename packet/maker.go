// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// maker.go — PacketMaker[S, D] and the Packet leaf.

package packet

import (
	"fmt"

	"github.com/keqiongpan/chainable/chain"
)

// Content type used by AppendText.
const textContentType = "text/plain; charset=utf-8"

// PacketMaker declares the packet operations with S left generic.
type PacketMaker[S any, D PacketData] struct {
	chain.Builder[S, D]
}

// Header sets a header; repeating a key overwrites it.
func (m *PacketMaker[S, D]) Header(key, value string) S {
	return m.Apply(func(d D) {
		p := d.Packet()
		if p.Headers == nil {
			p.Headers = make(map[string]string)
		}
		p.Headers[key] = value
	})
}

// Append adds parts in order. It accumulates.
func (m *PacketMaker[S, D]) Append(parts ...Part) S {
	return m.Apply(func(d D) {
		p := d.Packet()
		p.Parts = append(p.Parts, parts...)
	})
}

// AppendText adds a UTF-8 text part.
func (m *PacketMaker[S, D]) AppendText(name, text string) S {
	return m.Append(Part{Name: name, ContentType: textContentType, Body: []byte(text)})
}

// Reset drops headers, parts and any recorded error. Sent is kept.
func (m *PacketMaker[S, D]) Reset() S {
	return m.Apply(func(d D) {
		p := d.Packet()
		p.Headers, p.Parts, p.Err = nil, nil, nil
	})
}

// Send writes the packet through s. The first failure is stored on the model
// (see Err); while an error is stored, Send does nothing.
func (m *PacketMaker[S, D]) Send(s *Sender) S {
	return m.Apply(func(d D) {
		p := d.Packet()
		if p.Err != nil {
			return
		}
		if s == nil {
			p.Err = fmt.Errorf("Send: %w", ErrNilSender)
			return
		}
		if err := s.Send(p); err != nil {
			p.Err = err
			return
		}
		p.Sent++
	})
}

// Length returns the total body size in bytes.
func (m *PacketMaker[S, D]) Length() int {
	n := 0
	for _, part := range m.Data().Packet().Parts {
		n += len(part.Body)
	}

	return n
}

// Count returns the number of parts.
func (m *PacketMaker[S, D]) Count() int {
	return len(m.Data().Packet().Parts)
}

// Err returns the first recorded Send failure.
func (m *PacketMaker[S, D]) Err() error {
	return m.Data().Packet().Err
}

// Packet is the leaf packet maker.
type Packet struct {
	PacketMaker[*Packet, *PacketModel]
}

// NewPacket returns an empty Packet.
func NewPacket() *Packet {
	return chain.New[Packet](&PacketModel{})
}
