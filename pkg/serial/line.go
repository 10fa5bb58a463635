package serial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Provisioning errors.
var (
	// ErrConfiguration indicates a line specification that cannot be parsed.
	ErrConfiguration = errors.New("serial: malformed line configuration")

	// ErrUnsupportedValue indicates a well-formed line specification naming a
	// baud rate, parity or stop-bit count the platform cannot program.
	ErrUnsupportedValue = errors.New("serial: unsupported line parameter")

	// ErrInvalidTarget indicates a target that is neither a character device
	// nor, when spawning is allowed, a regular file.
	ErrInvalidTarget = errors.New("serial: invalid target")

	// ErrLineSetup indicates that programming the terminal failed.
	ErrLineSetup = errors.New("serial: line setup failed")

	// ErrSpawnFailed indicates the co-processor program could not be started.
	ErrSpawnFailed = errors.New("serial: spawn failed")

	// ErrUnsupportedPlatform is returned by provisioning on platforms other
	// than Linux.
	ErrUnsupportedPlatform = errors.New("serial: unsupported platform")

	// ErrClosed is returned when using a channel after Close.
	ErrClosed = errors.New("serial: channel closed")
)

// Parity is the parity mode, stored as its specification letter.
type Parity byte

const (
	ParityNone Parity = 'N'
	ParityEven Parity = 'E'
	ParityOdd  Parity = 'O'
)

// String returns the parity name.
func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "unknown"
	}
}

// StopBits is the number of stop bits.
type StopBits int

const (
	OneStopBit  StopBits = 1
	TwoStopBits StopBits = 2
)

// Defaults used for fields missing from a line specification.
const (
	DefaultBaudRate = 115200
	DefaultParity   = ParityNone
	DefaultStopBits = OneStopBit
)

// SupportedBaudRates lists the rates that can be programmed, in ascending
// order.
var SupportedBaudRates = []int{
	9600, 19200, 38400, 57600, 115200, 230400, 460800, 500000, 576000,
	921600, 1000000, 1152000, 1500000, 2000000, 2500000, 3000000,
	3500000, 4000000,
}

// LineConfig holds the serial line parameters.
type LineConfig struct {
	BaudRate int
	Parity   Parity
	StopBits StopBits
}

// DefaultLineConfig returns 115200N1.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		BaudRate: DefaultBaudRate,
		Parity:   DefaultParity,
		StopBits: DefaultStopBits,
	}
}

// String returns the compact specification, e.g. "115200N1".
func (c LineConfig) String() string {
	return fmt.Sprintf("%d%c%d", c.BaudRate, byte(c.Parity), int(c.StopBits))
}

// Validate checks every field against what the platform can program.
func (c LineConfig) Validate() error {
	if !isSupportedBaudRate(c.BaudRate) {
		return fmt.Errorf("%w: baud rate %d", ErrUnsupportedValue, c.BaudRate)
	}
	switch c.Parity {
	case ParityNone, ParityEven, ParityOdd:
	default:
		return fmt.Errorf("%w: parity %q", ErrUnsupportedValue, rune(c.Parity))
	}
	switch c.StopBits {
	case OneStopBit, TwoStopBits:
	default:
		return fmt.Errorf("%w: stop bits %d", ErrUnsupportedValue, int(c.StopBits))
	}
	return nil
}

// ParseLineConfig parses a <baud><parity><stop-bits> specification.
//
// Text that does not follow the grammar fails with ErrConfiguration. A
// well-formed value the platform cannot program fails with
// ErrUnsupportedValue; callers must not fall back to a default in that case.
func ParseLineConfig(spec string) (LineConfig, error) {
	cfg := DefaultLineConfig()

	s := strings.TrimSpace(spec)
	if s == "" {
		return cfg, nil
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return LineConfig{}, fmt.Errorf("%w: %q: missing baud rate", ErrConfiguration, spec)
	}
	baud, err := strconv.Atoi(s[:i])
	if err != nil {
		return LineConfig{}, fmt.Errorf("%w: %q: %v", ErrConfiguration, spec, err)
	}
	cfg.BaudRate = baud

	rest := s[i:]
	if rest != "" {
		cfg.Parity = Parity(toUpper(rest[0]))
		rest = rest[1:]
	}
	if rest != "" {
		stop, err := strconv.Atoi(rest)
		if err != nil {
			return LineConfig{}, fmt.Errorf("%w: %q: stop bits %q", ErrConfiguration, spec, rest)
		}
		cfg.StopBits = StopBits(stop)
	}

	if err := cfg.Validate(); err != nil {
		return LineConfig{}, err
	}
	return cfg, nil
}

func isSupportedBaudRate(rate int) bool {
	for _, r := range SupportedBaudRates {
		if r == rate {
			return true
		}
	}
	return false
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
