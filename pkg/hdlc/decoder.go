package hdlc

// Handler receives the results of decoding. Both methods are called
// synchronously from within Decoder.Decode.
//
// The slices passed to the handler alias the decoder's receive buffer and are
// only valid for the duration of the call.
type Handler interface {
	// OnFrameReceived is called with the payload of a frame whose FCS
	// validated. The trailer is not included.
	OnFrameReceived(frame []byte)

	// OnDecodeError is called with ErrChecksumMismatch or ErrBufferOverflow
	// and the bytes accumulated so far.
	OnDecodeError(err error, frame []byte)
}

// State is the decoder parse phase.
type State uint8

const (
	// StateIdle waits for a flag. Bytes are discarded.
	StateIdle State = iota
	// StateInFrame accumulates unescaped bytes.
	StateInFrame
	// StateEscaped un-escapes the next byte.
	StateEscaped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateInFrame:
		return "IN_FRAME"
	case StateEscaped:
		return "ESCAPED"
	default:
		return "UNKNOWN"
	}
}

// Decoder is an incremental HDLC frame decoder.
//
// A closing flag also opens the next frame, so consecutive frames may share a
// single flag. A flag seen before a full FCS trailer has accumulated restarts
// the frame silently, as does an escape followed by a flag (abort).
//
// Noise of two or more bytes before a frame's opening flag cannot be told
// apart from a corrupted frame, so it is reported as ErrChecksumMismatch and
// the frame that follows is still delivered.
// A Decoder must not be used concurrently.
type Decoder struct {
	handler Handler
	buf     FrameBuffer
	state   State
	fcs     uint16
}

// NewDecoder returns a Decoder reporting to h. The receive buffer holds limit
// bytes of unescaped payload plus trailer; 0 selects MaxFrameSize.
func NewDecoder(h Handler, limit int) *Decoder {
	d := &Decoder{handler: h}
	d.buf.SetLimit(limit)
	return d
}

// State returns the current parse phase.
func (d *Decoder) State() State { return d.state }

// Buffered returns the number of unescaped bytes accumulated for the current
// frame.
func (d *Decoder) Buffered() int { return d.buf.Len() }

// Reset discards any partial frame and waits for the next flag.
func (d *Decoder) Reset() {
	d.state = StateIdle
	d.buf.Reset()
	d.fcs = fcsInit
}

// Decode feeds data into the decoder. It may invoke the handler any number
// of times before returning.
func (d *Decoder) Decode(data []byte) {
	for _, b := range data {
		d.decodeByte(b)
	}
}

func (d *Decoder) decodeByte(b byte) {
	switch d.state {
	case StateIdle:
		if b == FlagSequence {
			d.restart()
		}

	case StateInFrame:
		switch b {
		case FlagSequence:
			d.complete()
		case EscapeSequence:
			d.state = StateEscaped
		default:
			d.accept(b)
		}

	case StateEscaped:
		if b == FlagSequence {
			// abort sequence
			d.restart()
			return
		}
		d.state = StateInFrame
		d.accept(b ^ EscapeMask)
	}
}

// restart begins accumulating a new frame.
func (d *Decoder) restart() {
	d.state = StateInFrame
	d.buf.Reset()
	d.fcs = fcsInit
}

func (d *Decoder) accept(b byte) {
	if err := d.buf.WriteByte(b); err != nil {
		d.state = StateIdle
		d.reportError(ErrBufferOverflow)
		d.buf.Reset()
		return
	}
	d.fcs = updateFCS(d.fcs, b)
}

func (d *Decoder) complete() {
	n := d.buf.Len()
	if n >= FCSSize {
		if d.fcs == fcsGood {
			if d.handler != nil {
				d.handler.OnFrameReceived(d.buf.Bytes()[:n-FCSSize])
			}
		} else {
			d.reportError(ErrChecksumMismatch)
		}
	}
	d.restart()
}

func (d *Decoder) reportError(err error) {
	if d.handler != nil {
		d.handler.OnDecodeError(err, d.buf.Bytes())
	}
}
