//go:build unix

package serial

import (
	"errors"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Channel is an open, non-blocking duplex byte channel.
//
// Read and Write never block; when no progress is possible they fail with
// unix.EAGAIN. A Channel is not safe for concurrent use.
type Channel struct {
	fd     int
	target string
	cmd    *exec.Cmd
	closed bool
}

// Fd returns the descriptor, for use in the host's readiness loop.
func (c *Channel) Fd() int { return c.fd }

// Target returns the device path or program the channel was provisioned from.
func (c *Channel) Target() string { return c.target }

// Spawned reports whether the far end is a child process.
func (c *Channel) Spawned() bool { return c.cmd != nil }

// Pid returns the child's process ID, or 0 for device channels.
func (c *Channel) Pid() int {
	if c.cmd == nil || c.cmd.Process == nil {
		return 0
	}
	return c.cmd.Process.Pid
}

// Read reads up to len(p) bytes.
func (c *Channel) Read(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	n, err := unix.Read(c.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Write writes up to len(p) bytes and returns how many were accepted.
func (c *Channel) Write(p []byte) (int, error) {
	if c.closed {
		return 0, ErrClosed
	}
	n, err := unix.Write(c.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Close closes the descriptor and, for spawned channels, waits for the child
// to terminate. The child is reaped exactly once.
func (c *Channel) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	err := unix.Close(c.fd)
	if c.cmd != nil {
		// a child killed by the hangup is a normal termination
		var exitErr *exec.ExitError
		if werr := c.cmd.Wait(); werr != nil && !errors.As(werr, &exitErr) {
			err = errors.Join(err, werr)
		}
	}
	return err
}
