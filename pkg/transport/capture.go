package transport

import (
	"time"

	"github.com/mash-protocol/mash-serial/pkg/log"
)

// MaxLogFrameDataSize is the maximum frame data included in capture events.
// Larger payloads are truncated.
const MaxLogFrameDataSize = 256

func (m *Manager) logFrame(dir log.Direction, payload []byte, wireSize int) {
	if m.protocol == nil {
		return
	}
	data, truncated := captureBytes(payload)
	m.protocol.Log(log.Event{
		Timestamp: time.Now(),
		ChannelID: m.channelID,
		Direction: dir,
		Layer:     log.LayerFraming,
		Category:  log.CategoryFrame,
		Target:    m.target,
		Frame: &log.FrameEvent{
			PayloadSize: len(payload),
			WireSize:    wireSize,
			Data:        data,
			Truncated:   truncated,
		},
	})
}

func (m *Manager) logState(oldState, newState, reason string, pid int) {
	if m.protocol == nil {
		return
	}
	m.protocol.Log(log.Event{
		Timestamp: time.Now(),
		ChannelID: m.channelID,
		Layer:     log.LayerChannel,
		Category:  log.CategoryState,
		Target:    m.target,
		StateChange: &log.StateChangeEvent{
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
			Pid:      pid,
		},
	})
}

func (m *Manager) logError(dir log.Direction, layer log.Layer, kind log.ErrorKind, op, msg string, partial []byte) {
	if m.protocol == nil {
		return
	}
	data, _ := captureBytes(partial)
	m.protocol.Log(log.Event{
		Timestamp: time.Now(),
		ChannelID: m.channelID,
		Direction: dir,
		Layer:     layer,
		Category:  log.CategoryError,
		Target:    m.target,
		Error: &log.ErrorEventData{
			Layer:   layer,
			Kind:    kind,
			Message: msg,
			Context: op,
			Data:    data,
		},
	})
}

// captureBytes copies b so the event outlives the codec buffers.
func captureBytes(b []byte) ([]byte, bool) {
	if len(b) == 0 {
		return nil, false
	}
	truncated := len(b) > MaxLogFrameDataSize
	if truncated {
		b = b[:MaxLogFrameDataSize]
	}
	return append([]byte(nil), b...), truncated
}
