package main

import (
	"fmt"
	"io"

	"github.com/mash-protocol/mash-serial/pkg/transport"
)

func printStats(out io.Writer, s transport.Stats) {
	fmt.Fprintf(out, "Frames:  %d sent, %d received\n", s.FramesSent, s.FramesReceived)
	fmt.Fprintf(out, "Bytes:   %d written, %d read\n", s.BytesWritten, s.BytesRead)
	fmt.Fprintf(out, "Errors:  %d checksum, %d overflow, %d write\n", s.ChecksumErrors, s.OverflowErrors, s.WriteErrors)
	fmt.Fprintf(out, "Blocked: %d\n", s.WouldBlock)
}
