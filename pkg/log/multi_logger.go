package log

// MultiLogger fans every event out to each of its loggers in order.
type MultiLogger []Logger

// NewMultiLogger drops nil entries, so optional sinks can be passed as is.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	m := make(MultiLogger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m MultiLogger) Log(event Event) {
	for _, l := range m {
		l.Log(event)
	}
}

var _ Logger = MultiLogger(nil)
