//go:build linux

package transport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerSpawnLoopback(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no pseudo-terminal support")
	}

	script := filepath.Join(t.TempDir(), "loopback")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexec cat\n"), 0o755))

	var frames [][]byte
	listener := ListenerFuncs{
		Frame: func(f []byte) { frames = append(frames, append([]byte(nil), f...)) },
		Error: func(err error, _ []byte) { t.Errorf("decode error: %v", err) },
	}

	capture := &captureLogger{}
	m := newTestManager(t, listener, Config{AllowSpawn: true, ProtocolLogger: capture})
	require.NoError(t, m.Open(script, ""))

	payloads := [][]byte{{0x01, 0x7E, 0x02}, {0x11, 0x13, 0x7D}, []byte("status")}
	for _, p := range payloads {
		require.NoError(t, m.SendFrame(p))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for len(frames) < len(payloads) {
		ready, err := WaitReadable(ctx, m.Fd(), 50*time.Millisecond)
		require.NoError(t, err)
		if ready {
			require.NoError(t, m.Process())
		}
	}

	assert.Equal(t, payloads, frames)
	assert.Equal(t, uint64(3), m.Stats().FramesSent)
	assert.Equal(t, uint64(3), m.Stats().FramesReceived)

	require.NoError(t, m.Close())
	assert.False(t, m.IsOpen())

	require.NotEmpty(t, capture.events)
	assert.Equal(t, script, capture.events[0].Target)
	assert.NotZero(t, capture.events[0].StateChange.Pid)
}

func TestManagerOpenRegularFileWithoutSpawn(t *testing.T) {
	script := filepath.Join(t.TempDir(), "firmware")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))

	m := newTestManager(t, nil, Config{})
	err := m.Open(script, "")
	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.False(t, IsFatal(err))
}

func TestManagerOpenUnsupportedBaudIsFatal(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no pseudo-terminal support")
	}
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	var handled *FatalError
	m := NewManager(nil, Config{
		Logger:       quietLogger(),
		FatalHandler: func(fe *FatalError) { handled = fe },
	})

	err = m.Open(tty.Name(), "1234N1")
	require.Error(t, err)
	require.NotNil(t, handled)
	assert.Equal(t, ExitInvalidArguments, handled.Code)
	assert.False(t, m.IsOpen())
}

func TestManagerOpenNonTerminalIgnoresLineSpec(t *testing.T) {
	m := NewManager(nil, Config{
		Logger:       quietLogger(),
		FatalHandler: func(fe *FatalError) { t.Fatalf("unexpected fatal error: %v", fe) },
	})

	require.NoError(t, m.Open("/dev/null", "1234N1"))
	assert.True(t, m.IsOpen())
	require.NoError(t, m.Close())
}
