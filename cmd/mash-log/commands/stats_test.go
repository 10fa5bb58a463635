package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/mash-serial/pkg/log"
)

func TestCollect(t *testing.T) {
	events := append(sessionEvents("chan-aaaa", baseTime), sessionEvents("chan-bbbb", baseTime.Add(time.Minute))...)
	path := createTestLogFile(t, events)

	stats, err := Collect(path)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 10 {
		t.Errorf("TotalEvents: got %d, want 10", stats.TotalEvents)
	}
	if stats.EventsByLayer[log.LayerChannel] != 4 || stats.EventsByLayer[log.LayerFraming] != 6 {
		t.Errorf("EventsByLayer: got %v", stats.EventsByLayer)
	}
	if stats.EventsByCategory[log.CategoryFrame] != 4 {
		t.Errorf("frames: got %d, want 4", stats.EventsByCategory[log.CategoryFrame])
	}
	if stats.EventsByDirection[log.DirectionIn] != 4 || stats.EventsByDirection[log.DirectionOut] != 2 {
		t.Errorf("EventsByDirection: got %v", stats.EventsByDirection)
	}
	if stats.ErrorsByKind[log.ErrorKindChecksum] != 2 {
		t.Errorf("checksum errors: got %d, want 2", stats.ErrorsByKind[log.ErrorKindChecksum])
	}
	if len(stats.Channels) != 2 {
		t.Fatalf("Channels: got %d, want 2", len(stats.Channels))
	}

	ch := stats.Channels["chan-aaaa"]
	if ch.FramesIn != 1 || ch.FramesOut != 1 || ch.PayloadIn != 2 || ch.PayloadOut != 3 {
		t.Errorf("channel frames: %+v", ch)
	}
	if ch.Target != "/dev/ttyACM0" {
		t.Errorf("Target: got %q", ch.Target)
	}
	if ch.LastSeen.Sub(ch.FirstSeen) != 4*time.Second {
		t.Errorf("channel duration: got %v", ch.LastSeen.Sub(ch.FirstSeen))
	}

	if !stats.TimeRange.Start.Equal(baseTime) {
		t.Errorf("TimeRange.Start: got %v", stats.TimeRange.Start)
	}
	if !stats.TimeRange.End.Equal(baseTime.Add(time.Minute + 4*time.Second)) {
		t.Errorf("TimeRange.End: got %v", stats.TimeRange.End)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, sessionEvents("abc12345-ffff", baseTime))

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 5",
		"FRAMING:",
		"Channels: 1",
		"[abc12345] 5 events",
		"Target: /dev/ttyACM0",
		"Frames: 1 in (2 bytes), 1 out (3 bytes)",
		"CHECKSUM:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
