package log

// Logger receives protocol capture events.
type Logger interface {
	// Log records an event. The transport calls it synchronously on its
	// I/O path, so implementations should return quickly. Byte slices in the
	// event are only valid for the duration of the call.
	Log(event Event)
}

// NoopLogger discards all events. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
