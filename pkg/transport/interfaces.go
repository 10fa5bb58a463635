package transport

import (
	"io"

	"github.com/mash-protocol/mash-serial/pkg/hdlc"
	"github.com/mash-protocol/mash-serial/pkg/serial"
)

// Listener receives decoded frames and decode errors. Both methods are called
// synchronously from within Manager.Process.
//
// Slices passed to the listener alias the decoder's receive buffer and are
// only valid for the duration of the call. A listener must not call
// Process or Close on the manager that invoked it.
type Listener interface {
	// OnFrameReceived is called once per frame whose checksum validated.
	OnFrameReceived(frame []byte)

	// OnDecodeError is called with hdlc.ErrChecksumMismatch or
	// hdlc.ErrBufferOverflow and the bytes accumulated before the error.
	OnDecodeError(err error, partial []byte)
}

// Channel is a non-blocking duplex byte channel owned by a Manager.
// Read and Write report would-block as unix.EAGAIN.
// Implemented by serial.Channel.
type Channel interface {
	io.ReadWriteCloser

	// Fd returns the descriptor to poll for readability.
	Fd() int
}

// ListenerFuncs adapts a pair of functions to a Listener. Nil functions are
// skipped.
type ListenerFuncs struct {
	Frame func(frame []byte)
	Error func(err error, partial []byte)
}

// OnFrameReceived calls f.Frame.
func (f ListenerFuncs) OnFrameReceived(frame []byte) {
	if f.Frame != nil {
		f.Frame(frame)
	}
}

// OnDecodeError calls f.Error.
func (f ListenerFuncs) OnDecodeError(err error, partial []byte) {
	if f.Error != nil {
		f.Error(err, partial)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Channel      = (*serial.Channel)(nil)
	_ Listener     = ListenerFuncs{}
	_ hdlc.Handler = (*dispatcher)(nil)
)
