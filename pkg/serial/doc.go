// Package serial provisions the byte channel that carries HDLC frames
// between the host and a co-processor.
//
// A target is either a character device (a UART, a USB CDC-ACM port or any
// other tty) or, when spawning is allowed, a regular file naming a program
// that emulates the co-processor. Devices are opened non-blocking and, if
// they are terminals, switched to raw mode with the requested line
// parameters. Programs are started under a pseudo-terminal and the host keeps
// the master side.
//
// Line parameters use the compact form <baud><parity><stop-bits>, for
// example "115200N1". Missing fields default to 115200, no parity and one
// stop bit.
//
// Provisioning is implemented for Linux only; other unix systems report
// ErrUnsupportedPlatform, and non-unix builds carry just the line parser.
package serial
