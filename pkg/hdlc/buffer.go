package hdlc

// FrameBuffer is a fixed-capacity byte arena for one frame.
//
// The backing array is part of the value, so a FrameBuffer embedded in a
// struct or declared on the stack needs no heap allocation. The zero value is
// ready to use with capacity MaxFrameSize.
type FrameBuffer struct {
	data  [MaxFrameSize]byte
	n     int
	limit int
}

// NewFrameBuffer returns a FrameBuffer whose capacity is lowered to limit.
// A limit outside (0, MaxFrameSize] selects MaxFrameSize.
func NewFrameBuffer(limit int) *FrameBuffer {
	b := &FrameBuffer{}
	b.SetLimit(limit)
	return b
}

// SetLimit lowers the usable capacity. It also resets the buffer.
func (b *FrameBuffer) SetLimit(limit int) {
	if limit <= 0 || limit > MaxFrameSize {
		limit = MaxFrameSize
	}
	b.limit = limit
	b.n = 0
}

// Cap returns the usable capacity.
func (b *FrameBuffer) Cap() int {
	if b.limit == 0 {
		return MaxFrameSize
	}
	return b.limit
}

// Len returns the number of bytes written.
func (b *FrameBuffer) Len() int { return b.n }

// Remaining returns the number of bytes that can still be written.
func (b *FrameBuffer) Remaining() int { return b.Cap() - b.n }

// CanWrite reports whether n more bytes fit.
func (b *FrameBuffer) CanWrite(n int) bool { return b.Remaining() >= n }

// WriteByte appends c, failing with ErrBufferFull at capacity.
func (b *FrameBuffer) WriteByte(c byte) error {
	if b.n >= b.Cap() {
		return ErrBufferFull
	}
	b.data[b.n] = c
	b.n++
	return nil
}

// Bytes returns the written bytes. The slice aliases the buffer and is only
// valid until the next write or Reset.
func (b *FrameBuffer) Bytes() []byte { return b.data[:b.n] }

// Truncate discards all but the first n bytes.
func (b *FrameBuffer) Truncate(n int) {
	if n >= 0 && n < b.n {
		b.n = n
	}
}

// Reset discards the written bytes, keeping the capacity.
func (b *FrameBuffer) Reset() { b.n = 0 }
