// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// model.go — the packet model and its wire parts.

package packet

// Part is one named chunk of a packet.
type Part struct {
	Name        string `cbor:"1,keyasint"`
	ContentType string `cbor:"2,keyasint,omitempty"`
	Body        []byte `cbor:"3,keyasint"`
}

// PacketModel is the state configured by PacketMaker.
type PacketModel struct {
	Headers map[string]string
	Parts   []Part
	Sent    int   // frames written successfully
	Err     error // first Send failure; blocks later sends until Reset
}

// Packet returns m; embedders promote it.
func (m *PacketModel) Packet() *PacketModel { return m }

// PacketData is satisfied by *PacketModel and pointers to its embedders.
type PacketData interface {
	Packet() *PacketModel
}
