// Package transport binds the HDLC codec to a serial channel.
//
// A Manager owns exactly one channel at a time. It encodes outbound frames
// and writes them with a short-write retry loop, and it decodes whatever the
// channel delivers, dispatching complete frames and decode errors to a
// Listener.
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│   Upper protocol (frames)      │
//	├────────────────────────────────┤
//	│   HDLC-lite: flags, escapes,   │
//	│   FCS-16 trailer               │
//	├────────────────────────────────┤
//	│   Raw tty: device or pty       │
//	└────────────────────────────────┘
//
// # Event Loop
//
// The Manager never blocks and never starts goroutines. The host polls the
// descriptor and calls Process when it is readable, and calls SendFrame when
// it has outbound data. All calls into one Manager must be serialized:
//
//	m := transport.NewManager(listener, transport.Config{})
//	if err := m.Open("/dev/ttyUSB0", "115200N1"); err != nil {
//		return err
//	}
//	defer m.Close()
//
//	for {
//		ready, err := transport.WaitReadable(ctx, m.Fd(), 100*time.Millisecond)
//		if err != nil {
//			return err
//		}
//		if ready {
//			if err := m.Process(); err != nil {
//				return err
//			}
//		}
//	}
//
// # Fatal Errors
//
// A link that cannot be configured or read has no degraded mode. Such
// conditions are reported as a *FatalError to Config.FatalHandler, which by
// default logs and exits the process with the error's code.
package transport
