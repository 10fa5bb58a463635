package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/mash-serial/pkg/log"
)

var baseTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sessionEvents is one channel lifetime: open, a frame each way, a
// checksum error and close.
func sessionEvents(channelID string, start time.Time) []log.Event {
	return []log.Event{
		{
			Timestamp: start,
			ChannelID: channelID,
			Layer:     log.LayerChannel,
			Category:  log.CategoryState,
			Target:    "/dev/ttyACM0",
			StateChange: &log.StateChangeEvent{
				OldState: "CLOSED",
				NewState: "OPEN",
			},
		},
		{
			Timestamp: start.Add(time.Second),
			ChannelID: channelID,
			Direction: log.DirectionOut,
			Layer:     log.LayerFraming,
			Category:  log.CategoryFrame,
			Target:    "/dev/ttyACM0",
			Frame:     &log.FrameEvent{PayloadSize: 3, WireSize: 8, Data: []byte{0x01, 0x7E, 0x02}},
		},
		{
			Timestamp: start.Add(2 * time.Second),
			ChannelID: channelID,
			Direction: log.DirectionIn,
			Layer:     log.LayerFraming,
			Category:  log.CategoryFrame,
			Target:    "/dev/ttyACM0",
			Frame:     &log.FrameEvent{PayloadSize: 2, Data: []byte{0xCA, 0xFE}},
		},
		{
			Timestamp: start.Add(3 * time.Second),
			ChannelID: channelID,
			Direction: log.DirectionIn,
			Layer:     log.LayerFraming,
			Category:  log.CategoryError,
			Target:    "/dev/ttyACM0",
			Error: &log.ErrorEventData{
				Layer:   log.LayerFraming,
				Kind:    log.ErrorKindChecksum,
				Message: "hdlc: checksum mismatch",
				Context: "decode",
				Data:    []byte{0x10, 0x20},
			},
		},
		{
			Timestamp: start.Add(4 * time.Second),
			ChannelID: channelID,
			Layer:     log.LayerChannel,
			Category:  log.CategoryState,
			Target:    "/dev/ttyACM0",
			StateChange: &log.StateChangeEvent{
				OldState: "OPEN",
				NewState: "CLOSED",
			},
		},
	}
}
