package packet_test

import (
	"bytes"
	"fmt"

	"github.com/keqiongpan/chainable/packet"
)

// ExampleNewPacket builds, sends and decodes one packet.
func ExampleNewPacket() {
	var wire bytes.Buffer
	snd, _ := packet.NewSender(packet.WithWriter(&wire))

	p := packet.NewPacket().
		Header("to", "ops").
		AppendText("subject", "disk").
		AppendText("body", "almost full")
	fmt.Println(p.Count(), p.Length())

	p.Send(snd)
	frame, _ := packet.Decode(&wire)
	fmt.Println(frame.Headers["to"], frame.Parts[1].Name, string(frame.Parts[1].Body))

	// Output:
	// 2 15
	// ops body almost full
}
