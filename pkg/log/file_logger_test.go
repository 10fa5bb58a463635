package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func frameEvent(channelID string, dir Direction, size int) Event {
	return Event{
		Timestamp: time.Now(),
		ChannelID: channelID,
		Direction: dir,
		Layer:     LayerFraming,
		Category:  CategoryFrame,
		Frame:     &FrameEvent{PayloadSize: size},
	}
}

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(frameEvent("chan-1", DirectionIn, 100))
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if decoded.ChannelID != "chan-1" {
		t.Errorf("ChannelID: got %q, want %q", decoded.ChannelID, "chan-1")
	}
	if decoded.Frame == nil || decoded.Frame.PayloadSize != 100 {
		t.Errorf("Frame: got %+v", decoded.Frame)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mlog")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(frameEvent("chan", DirectionOut, i))
		logger.Close()
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		if _, err := reader.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("event count: got %d, want 2", count)
	}
}

func TestFileLoggerCloseIsIdempotent(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "test.mlog"))
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: got %v, want nil", err)
	}

	// Log after close is ignored
	logger.Log(frameEvent("chan", DirectionIn, 1))
	if logger.Count() != 0 {
		t.Errorf("Count after close: got %d, want 0", logger.Count())
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				logger.Log(frameEvent("chan", DirectionIn, j))
			}
		}()
	}
	wg.Wait()

	if logger.Count() != 200 {
		t.Errorf("Count: got %d, want 200", logger.Count())
	}
	logger.Close()
}

func TestFileLoggerBadPath(t *testing.T) {
	if _, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "test.mlog")); err == nil {
		t.Error("expected error for missing directory")
	}
}

type failingWriter struct {
	writes int
	closed bool
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > 1 {
		return 0, errDiskFull
	}
	return len(p), nil
}

func (w *failingWriter) Close() error {
	w.closed = true
	return nil
}

func TestStreamLoggerStopsOnWriteError(t *testing.T) {
	w := &failingWriter{}
	logger := NewStreamLogger(w)

	for i := 0; i < 3; i++ {
		logger.Log(frameEvent("chan", DirectionOut, i))
	}

	if logger.Count() != 1 {
		t.Errorf("Count: got %d, want 1", logger.Count())
	}
	if !errors.Is(logger.Err(), errDiskFull) {
		t.Errorf("Err: got %v, want %v", logger.Err(), errDiskFull)
	}
	if w.writes != 2 {
		t.Errorf("writes: got %d, want 2 (no writes after the failure)", w.writes)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !w.closed {
		t.Error("underlying writer not closed")
	}
}
