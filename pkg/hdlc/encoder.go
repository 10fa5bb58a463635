package hdlc

// Encoder byte-stuffs a payload into a FrameBuffer and appends the FCS
// trailer. Init, Encode and Finalize must be called in that order for each
// frame; Encode may be called several times in between. The zero value is
// ready to use.
type Encoder struct {
	fcs uint16
}

// Init starts a new frame by writing the opening flag.
func (e *Encoder) Init(buf *FrameBuffer) error {
	e.fcs = fcsInit
	return buf.WriteByte(FlagSequence)
}

// Encode appends payload, escaping reserved bytes and updating the FCS.
// It fails with ErrBufferFull as soon as buf cannot take the next byte;
// buf then holds a partial frame that must not be sent.
func (e *Encoder) Encode(payload []byte, buf *FrameBuffer) error {
	for _, b := range payload {
		if err := encodeByte(b, buf); err != nil {
			return err
		}
		e.fcs = updateFCS(e.fcs, b)
	}
	return nil
}

// Finalize appends the FCS trailer and the closing flag.
func (e *Encoder) Finalize(buf *FrameBuffer) error {
	fcs := ^e.fcs
	if err := encodeByte(byte(fcs), buf); err != nil {
		return err
	}
	if err := encodeByte(byte(fcs>>8), buf); err != nil {
		return err
	}
	return buf.WriteByte(FlagSequence)
}

// EncodeFrame resets buf and writes one complete frame carrying payload.
func EncodeFrame(payload []byte, buf *FrameBuffer) error {
	var enc Encoder
	buf.Reset()
	if err := enc.Init(buf); err != nil {
		return err
	}
	if err := enc.Encode(payload, buf); err != nil {
		return err
	}
	return enc.Finalize(buf)
}

func encodeByte(b byte, buf *FrameBuffer) error {
	if !needsEscape(b) {
		return buf.WriteByte(b)
	}
	// the escape pair is written whole or not at all
	if !buf.CanWrite(2) {
		return ErrBufferFull
	}
	_ = buf.WriteByte(EscapeSequence)
	return buf.WriteByte(b ^ EscapeMask)
}
