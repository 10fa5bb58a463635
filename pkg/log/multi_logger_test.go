package log

import "testing"

type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	m := NewMultiLogger(a, nil, b)

	if len(m) != 2 {
		t.Fatalf("len: got %d, want 2", len(m))
	}

	m.Log(frameEvent("chan", DirectionOut, 4))

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Errorf("events: got %d/%d, want 1/1", len(a.events), len(b.events))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	m.Log(frameEvent("chan", DirectionOut, 4))
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(frameEvent("chan", DirectionIn, 1))
}
