package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Capture files are a plain concatenation of CBOR-encoded events. Encoding
// is canonical so identical events produce identical bytes; decoding is
// lenient because a capture may end mid-event after a crash.
var (
	encMode = must(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode())

	decMode = must(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}.DecMode())
)

func must[M any](mode M, err error) M {
	if err != nil {
		panic(fmt.Sprintf("log: cbor mode: %v", err))
	}
	return mode
}

// EncodeEvent encodes a single event.
func EncodeEvent(event Event) ([]byte, error) {
	return encMode.Marshal(event)
}

// DecodeEvent decodes a single event.
func DecodeEvent(data []byte) (event Event, err error) {
	err = decMode.Unmarshal(data, &event)
	return event, err
}

// NewEncoder returns a stream encoder for capture files.
func NewEncoder(w io.Writer) *cbor.Encoder { return encMode.NewEncoder(w) }

// NewDecoder returns a stream decoder for capture files.
func NewDecoder(r io.Reader) *cbor.Decoder { return decMode.NewDecoder(r) }
