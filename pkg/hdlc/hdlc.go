package hdlc

import "errors"

// Reserved bytes.
const (
	// FlagSequence delimits frames.
	FlagSequence byte = 0x7E

	// EscapeSequence introduces an escaped byte.
	EscapeSequence byte = 0x7D

	// EscapeMask is XORed into the byte following EscapeSequence.
	EscapeMask byte = 0x20

	// FlagXOn and FlagXOff are software flow-control bytes. They are escaped
	// so a frame never carries them raw.
	FlagXOn  byte = 0x11
	FlagXOff byte = 0x13
)

// Size constants.
const (
	// MaxFrameSize bounds both the encoded frame (flags and escapes
	// included) and the decoder receive buffer.
	MaxFrameSize = 2048

	// FCSSize is the size of the integrity trailer.
	FCSSize = 2
)

// Framing errors.
var (
	// ErrBufferFull indicates the output buffer cannot hold the next byte.
	ErrBufferFull = errors.New("hdlc: buffer full")

	// ErrChecksumMismatch indicates a received frame failed FCS validation.
	ErrChecksumMismatch = errors.New("hdlc: checksum mismatch")

	// ErrBufferOverflow indicates a received frame exceeded the receive buffer.
	ErrBufferOverflow = errors.New("hdlc: receive buffer overflow")
)

// needsEscape reports whether b must be byte-stuffed on the wire.
func needsEscape(b byte) bool {
	switch b {
	case FlagSequence, EscapeSequence, FlagXOn, FlagXOff:
		return true
	default:
		return false
	}
}
