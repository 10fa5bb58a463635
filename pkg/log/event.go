package log

import "time"

// Event is one protocol capture record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ChannelID identifies one open/close lifetime of a channel (UUID).
	ChannelID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`
	Layer     Layer     `cbor:"4,keyasint"`
	Category  Category  `cbor:"5,keyasint"`

	// Target is the device path or program behind the channel.
	Target string `cbor:"6,keyasint,omitempty"`

	// One of these is set.
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates data flow relative to the host.
type Direction uint8

const (
	// DirectionIn is co-processor to host.
	DirectionIn Direction = 0
	// DirectionOut is host to co-processor.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates where the event was captured.
type Layer uint8

const (
	// LayerChannel is the byte channel (device or pty).
	LayerChannel Layer = 0
	// LayerFraming is the HDLC codec.
	LayerFraming Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerChannel:
		return "CHANNEL"
	case LayerFraming:
		return "FRAMING"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event.
type Category uint8

const (
	CategoryFrame Category = 0
	CategoryState Category = 1
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures one frame.
type FrameEvent struct {
	// PayloadSize is the unescaped payload size.
	PayloadSize int `cbor:"1,keyasint"`

	// WireSize is the encoded size including flags, escapes and FCS.
	// Only known for outbound frames.
	WireSize int `cbor:"2,keyasint,omitempty"`

	// Data is the payload (may be truncated).
	Data []byte `cbor:"3,keyasint,omitempty"`

	Truncated bool `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures a channel lifecycle change.
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint,omitempty"`
	NewState string `cbor:"2,keyasint"`
	Reason   string `cbor:"3,keyasint,omitempty"`

	// Pid is the spawned co-processor process, if any.
	Pid int `cbor:"4,keyasint,omitempty"`
}

// ErrorKind classifies link errors.
type ErrorKind uint8

const (
	ErrorKindChecksum ErrorKind = 0
	ErrorKindOverflow ErrorKind = 1
	ErrorKindWrite    ErrorKind = 2
	ErrorKindRead     ErrorKind = 3
	ErrorKindFatal    ErrorKind = 4
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindChecksum:
		return "CHECKSUM"
	case ErrorKindOverflow:
		return "OVERFLOW"
	case ErrorKindWrite:
		return "WRITE"
	case ErrorKindRead:
		return "READ"
	case ErrorKindFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	Layer   Layer     `cbor:"1,keyasint"`
	Kind    ErrorKind `cbor:"2,keyasint"`
	Message string    `cbor:"3,keyasint"`

	// Context describes the operation in progress.
	Context string `cbor:"4,keyasint,omitempty"`

	// Data holds the bytes accumulated when a decode error hit (may be
	// truncated).
	Data []byte `cbor:"5,keyasint,omitempty"`
}
