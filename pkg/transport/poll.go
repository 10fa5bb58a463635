package transport

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

// WaitReadable waits up to timeout for fd to become readable. It reports
// false when the timeout elapses first. A hangup or error condition on the
// descriptor counts as readable so that the following Process call observes
// it.
//
// The wait never outlasts ctx: it fails with ctx.Err() as soon as ctx is
// canceled or its deadline passes, whichever comes first.
func WaitReadable(ctx context.Context, fd int, timeout time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		if d := time.Until(deadline); d < timeout {
			timeout = max(d, 0)
		}
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	if ctx.Done() != nil {
		wake, stop, err := wakeOnDone(ctx)
		if err != nil {
			return false, err
		}
		defer stop()
		fds = append(fds, unix.PollFd{Fd: int32(wake), Events: unix.POLLIN})
	}

	n, err := unix.Poll(fds, pollMillis(timeout))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, ctx.Err()
		}
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if n == 0 {
		if hasDeadline && !time.Now().Before(deadline) {
			return false, context.DeadlineExceeded
		}
		return false, nil
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0, nil
}

// pollMillis rounds d up to whole milliseconds so poll never returns before
// d has elapsed.
func pollMillis(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Millisecond - 1) / time.Millisecond)
}

// wakeOnDone returns the read end of a pipe that becomes readable when ctx
// is done. stop releases the pipe.
func wakeOnDone(ctx context.Context) (int, func(), error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return -1, nil, err
	}
	written := make(chan struct{})
	release := context.AfterFunc(ctx, func() {
		_, _ = unix.Write(p[1], []byte{0})
		close(written)
	})
	return p[0], func() {
		// wait out a started write before closing its descriptor
		if !release() {
			<-written
		}
		unix.Close(p[0])
		unix.Close(p[1])
	}, nil
}
