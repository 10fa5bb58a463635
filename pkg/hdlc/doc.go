// Package hdlc implements the HDLC-lite framing used on the host to
// co-processor serial link.
//
// Frames are delimited by a flag byte. Reserved bytes inside a frame are
// escaped, and every frame carries a 16-bit FCS trailer so the receiver can
// reject corrupted frames.
//
// # Wire Format
//
//	┌──────┬──────────────────────────┬──────────────┬──────┐
//	│ 0x7E │ payload (byte-stuffed)   │ FCS (LE, 2B) │ 0x7E │
//	└──────┴──────────────────────────┴──────────────┴──────┘
//
// Escaping replaces a reserved byte b with the pair 0x7D, b^0x20. The flag,
// the escape byte and the XON/XOFF flow-control bytes are always escaped.
//
// # Encoding
//
// An Encoder writes into a caller-owned FrameBuffer. A FrameBuffer has a fixed
// capacity and never grows, so a frame that does not fit fails with
// ErrBufferFull instead of allocating:
//
//	var buf hdlc.FrameBuffer
//	var enc hdlc.Encoder
//	if err := enc.Init(&buf); err != nil { ... }
//	if err := enc.Encode(payload, &buf); err != nil { ... }
//	if err := enc.Finalize(&buf); err != nil { ... }
//	wire := buf.Bytes()
//
// # Decoding
//
// A Decoder is fed arbitrary chunks of the received byte stream, down to one
// byte at a time, and reports complete frames and framing errors to a Handler
// synchronously from within Decode.
package hdlc
