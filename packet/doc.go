// SPDX-License-Identifier: MIT
// Package: chainable/packet
//
// doc.go — package overview.

// Package packet is a multipart packet maker whose chain ends in a side
// effect:
//
//	s, err := packet.NewSender(packet.WithWriter(conn), packet.WithCompression(true))
//	if err != nil { ... }
//	p := packet.NewPacket().
//		Header("to", "ops").
//		AppendText("body", "disk almost full").
//		Send(s)
//	if err := p.Err(); err != nil { ... }
//
// Chain ops (Header, Append, AppendText, Reset, Send) return the leaf; Length
// and Count are plain queries. Send never breaks the chain: the first failure
// is recorded on the model and later sends become no-ops until Reset.
//
// Wire format, one frame per Send:
//
//	+-------+----------------+-------------------------------+
//	| flags | length (u32be) | payload (CBOR, maybe zstd)    |
//	+-------+----------------+-------------------------------+
//
// flags bit 0 marks a zstd-compressed payload. Decode reads one frame back.
package packet
