package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logToJSON(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsFrameEvent(t *testing.T) {
	entry := logToJSON(t, Event{
		Timestamp: time.Now(),
		ChannelID: "chan-123",
		Direction: DirectionOut,
		Layer:     LayerFraming,
		Category:  CategoryFrame,
		Target:    "/dev/ttyUSB0",
		Frame:     &FrameEvent{PayloadSize: 3, WireSize: 8},
	})

	if entry["msg"] != "protocol" {
		t.Errorf("msg: got %v, want %q", entry["msg"], "protocol")
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want DEBUG", entry["level"])
	}
	if entry["channel_id"] != "chan-123" {
		t.Errorf("channel_id: got %v", entry["channel_id"])
	}
	if entry["direction"] != "OUT" {
		t.Errorf("direction: got %v, want OUT", entry["direction"])
	}
	if entry["target"] != "/dev/ttyUSB0" {
		t.Errorf("target: got %v", entry["target"])
	}
	if entry["payload_size"] != float64(3) || entry["wire_size"] != float64(8) {
		t.Errorf("sizes: got %v/%v", entry["payload_size"], entry["wire_size"])
	}
}

func TestSlogAdapterLogsStateChange(t *testing.T) {
	entry := logToJSON(t, Event{
		ChannelID: "chan",
		Layer:     LayerChannel,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			OldState: "CLOSED",
			NewState: "OPEN",
			Reason:   "spawned",
			Pid:      4242,
		},
	})

	if entry["new_state"] != "OPEN" || entry["old_state"] != "CLOSED" {
		t.Errorf("states: got %v -> %v", entry["old_state"], entry["new_state"])
	}
	if entry["reason"] != "spawned" {
		t.Errorf("reason: got %v", entry["reason"])
	}
	if entry["pid"] != float64(4242) {
		t.Errorf("pid: got %v", entry["pid"])
	}
}

func TestSlogAdapterLogsError(t *testing.T) {
	entry := logToJSON(t, Event{
		ChannelID: "chan",
		Direction: DirectionIn,
		Layer:     LayerFraming,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerFraming,
			Kind:    ErrorKindOverflow,
			Message: "frame buffer overflow",
			Context: "decode",
		},
	})

	if entry["error_kind"] != "OVERFLOW" {
		t.Errorf("error_kind: got %v", entry["error_kind"])
	}
	if entry["error_msg"] != "frame buffer overflow" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if entry["error_context"] != "decode" {
		t.Errorf("error_context: got %v", entry["error_context"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(frameEvent("chan", DirectionIn, 1))

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
