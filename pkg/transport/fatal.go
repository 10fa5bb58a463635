package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mash-protocol/mash-serial/pkg/serial"
)

// ExitCode is the process exit status for a fatal link error.
type ExitCode int

const (
	// ExitFailure reports an unusable channel: a failed read, line setup
	// or spawn.
	ExitFailure ExitCode = 1

	// ExitInvalidArguments reports a line configuration naming values the
	// platform cannot program.
	ExitInvalidArguments ExitCode = 2
)

// FatalError is an unrecoverable link error. The process is expected to
// terminate with Code.
type FatalError struct {
	Code ExitCode
	Op   string
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("transport: fatal %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// FatalHandler is invoked for every fatal error. If it returns, the
// operation that failed returns the *FatalError to its caller.
type FatalHandler func(*FatalError)

var (
	defaultExit = os.Exit
	exit        = defaultExit
)

// DefaultFatalHandler returns a handler that logs the error and exits the
// process with its code.
func DefaultFatalHandler(logger *slog.Logger) FatalHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(fe *FatalError) {
		logger.Error("fatal link error",
			slog.String("op", fe.Op),
			slog.Int("exit_code", int(fe.Code)),
			slog.Any("error", fe.Err),
		)
		exit(int(fe.Code))
	}
}

// IsFatal reports whether err is, or wraps, a *FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// openErrorCode classifies a provisioning error. Errors that leave the
// caller a choice (bad target, malformed spec) are not fatal.
func openErrorCode(err error) (ExitCode, bool) {
	switch {
	case errors.Is(err, serial.ErrUnsupportedValue):
		return ExitInvalidArguments, true
	case errors.Is(err, serial.ErrLineSetup), errors.Is(err, serial.ErrSpawnFailed):
		return ExitFailure, true
	default:
		return 0, false
	}
}
