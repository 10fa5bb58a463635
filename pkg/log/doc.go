// Package log provides protocol capture for the serial link.
//
// Capture is separate from operational logging (slog): it records what
// crossed the channel as a machine-readable event trace. The transport
// manager emits an Event for every frame sent or received, every decode
// error and every channel lifecycle change.
//
// # Basic Usage
//
//	// during development: print events via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// in the field: write a capture file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/mash/link.mlog")
//
// # File Format
//
// Capture files are a stream of CBOR-encoded events with integer keys, using
// the .mlog extension. The mash-log tool views, filters, exports and
// summarizes them.
package log
