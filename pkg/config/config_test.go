package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("target: /dev/ttyACM0\n"))
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.Target)
	assert.Equal(t, DefaultLine, cfg.Line)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.False(t, cfg.AllowSpawn)
}

func TestParseAllFields(t *testing.T) {
	data := []byte(`
target: ./ot-rcp
line: "1"
allow_spawn: true
max_frame_size: 1300
protocol_log: /tmp/link.mlog
log_level: debug
poll_interval: 250ms
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Target:       "./ot-rcp",
		Line:         "1",
		AllowSpawn:   true,
		MaxFrameSize: 1300,
		ProtocolLog:  "/tmp/link.mlog",
		LogLevel:     "debug",
		PollInterval: 250 * time.Millisecond,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("target: [unterminated"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "failed to parse YAML", le.Message)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: /dev/ttyUSB1\nline: 9600E1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", cfg.Target)
	assert.Equal(t, "9600E1", cfg.Line)
}

func TestLoadErrorsNameTheFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, err.Error(), "missing.yaml")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("poll_interval: soon\n"), 0o644))
	_, err = Load(bad)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, bad, le.File)
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Target = "/dev/ttyUSB0"

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"no target", func(c *Config) { c.Target = "" }, ErrInvalid},
		{"negative frame size", func(c *Config) { c.MaxFrameSize = -1 }, ErrInvalid},
		{"frame size too large", func(c *Config) { c.MaxFrameSize = 4096 }, ErrInvalid},
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }, ErrInvalid},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalid},
		{"line checked at open", func(c *Config) { c.Line = "1234N1" }, nil},
		{"spawn ignores line", func(c *Config) { c.AllowSpawn = true; c.Line = "--debug -v" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("trace")
	assert.ErrorIs(t, err, ErrInvalid)
}
