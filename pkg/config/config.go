// Package config loads the link configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/mash-serial/pkg/hdlc"
)

// Defaults.
const (
	DefaultLine         = "115200N1"
	DefaultLogLevel     = "info"
	DefaultPollInterval = 100 * time.Millisecond
)

// Config describes one serial link.
type Config struct {
	// Target is a character device path, or a program path when AllowSpawn
	// is set.
	Target string `yaml:"target"`

	// Line is the line specification for devices (e.g. "115200N1") or the
	// argument string for spawned programs.
	Line string `yaml:"line"`

	AllowSpawn bool `yaml:"allow_spawn"`

	// MaxFrameSize lowers the frame size bound; 0 uses the codec maximum.
	MaxFrameSize int `yaml:"max_frame_size"`

	// ProtocolLog is the .mlog capture file. Empty disables capture.
	ProtocolLog string `yaml:"protocol_log"`

	LogLevel string `yaml:"log_level"`

	// PollInterval bounds each readiness wait of the host loop.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// LoadError reports a configuration file that could not be used.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Default returns the built-in configuration. It has no target.
func Default() Config {
	return Config{
		Line:         DefaultLine,
		LogLevel:     DefaultLogLevel,
		PollInterval: DefaultPollInterval,
	}
}

// Parse parses YAML over the defaults. Fields absent from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without touching the
// target. The line specification is left to Open: it only applies once the
// target turns out to be a terminal, and for spawned programs it carries
// arguments.
func (c Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("%w: target is required", ErrInvalid)
	}
	if c.MaxFrameSize < 0 || c.MaxFrameSize > hdlc.MaxFrameSize {
		return fmt.Errorf("%w: max_frame_size %d outside 0..%d", ErrInvalid, c.MaxFrameSize, hdlc.MaxFrameSize)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll_interval must be positive", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to an slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
}
