//go:build unix

package serial

import (
	"fmt"
	"os"
)

// DefaultShell runs spawned programs when SHELL is not set.
const DefaultShell = "/bin/sh"

// maxCommandLine bounds the shell command built for a spawned program.
const maxCommandLine = 255

// Options controls provisioning.
type Options struct {
	// AllowSpawn permits regular-file targets, which are run as programs.
	AllowSpawn bool
}

// Provision materializes a Channel from target.
//
// For a character device, config is the line specification; it is parsed
// only when the device is a terminal. For a regular
// file (only with opts.AllowSpawn), target is run as a program and config is
// passed as its argument string.
func Provision(target, config string, opts Options) (*Channel, error) {
	st, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}

	switch mode := st.Mode(); {
	case mode&os.ModeCharDevice != 0:
		return openDeviceSpec(target, config)

	case mode.IsRegular() && opts.AllowSpawn:
		return Spawn(target, config)

	default:
		return nil, fmt.Errorf("%w: %s: unsupported file type %s", ErrInvalidTarget, target, mode.Type())
	}
}

// commandLine builds the shell command that replaces the shell with the
// program.
func commandLine(command, args string) (string, error) {
	line := "exec " + command
	if args != "" {
		line += " " + args
	}
	if len(line) >= maxCommandLine {
		return "", fmt.Errorf("%w: command line longer than %d bytes", ErrSpawnFailed, maxCommandLine)
	}
	return line, nil
}

// shell returns the shell used for spawned programs.
func shell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return DefaultShell
}
