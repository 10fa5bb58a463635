package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mash-protocol/mash-serial/pkg/transport"
)

// link serializes every call into the manager onto the goroutine running
// the readiness loop.
type link struct {
	m        *transport.Manager
	interval time.Duration
	ops      chan func(*transport.Manager)
}

func newLink(m *transport.Manager, interval time.Duration) *link {
	return &link{
		m:        m,
		interval: interval,
		ops:      make(chan func(*transport.Manager)),
	}
}

// run services the link until ctx is done or Process fails.
func (l *link) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case op := <-l.ops:
			op(l.m)
			continue
		default:
		}

		ready, err := transport.WaitReadable(ctx, l.m.Fd(), l.interval)
		if err != nil {
			return err
		}
		if ready {
			if err := l.m.Process(); err != nil {
				return err
			}
		}
	}
}

// do runs op on the loop goroutine and waits for it to finish.
func (l *link) do(ctx context.Context, op func(*transport.Manager)) error {
	done := make(chan struct{})
	select {
	case l.ops <- func(m *transport.Manager) { op(m); close(done) }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *link) send(ctx context.Context, payload []byte) error {
	var sendErr error
	if err := l.do(ctx, func(m *transport.Manager) { sendErr = m.SendFrame(payload) }); err != nil {
		return err
	}
	return sendErr
}

func (l *link) stats(ctx context.Context) (transport.Stats, error) {
	var s transport.Stats
	err := l.do(ctx, func(m *transport.Manager) { s = m.Stats() })
	return s, err
}

// printer writes received frames and decode errors.
type printer struct {
	out io.Writer
}

func (p *printer) OnFrameReceived(frame []byte) {
	fmt.Fprintf(p.out, "< %s\n", formatHex(frame))
}

func (p *printer) OnDecodeError(err error, partial []byte) {
	fmt.Fprintf(p.out, "! %v (%d bytes dropped)\n", err, len(partial))
}

// readHexLines sends every non-empty line of r as a frame. Reaching the end
// of r leaves the link running.
func readHexLines(ctx context.Context, r io.Reader, l *link, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		payload, err := parseHex(text)
		if err != nil {
			logger.Warn("Ignoring input line", "error", err)
			continue
		}
		if err := l.send(ctx, payload); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Send failed", "error", err, "size", len(payload))
		}
	}
}
