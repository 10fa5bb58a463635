package serial

import (
	"errors"
	"testing"
)

func TestParseLineConfig(t *testing.T) {
	tests := []struct {
		spec string
		want LineConfig
	}{
		{"", LineConfig{115200, ParityNone, OneStopBit}},
		{"  ", LineConfig{115200, ParityNone, OneStopBit}},
		{"115200N1", LineConfig{115200, ParityNone, OneStopBit}},
		{"9600", LineConfig{9600, ParityNone, OneStopBit}},
		{"9600E", LineConfig{9600, ParityEven, OneStopBit}},
		{"57600O2", LineConfig{57600, ParityOdd, TwoStopBits}},
		{"460800e1", LineConfig{460800, ParityEven, OneStopBit}},
		{"4000000N2", LineConfig{4000000, ParityNone, TwoStopBits}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseLineConfig(tt.spec)
			if err != nil {
				t.Fatalf("ParseLineConfig(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseLineConfig(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseLineConfigErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"N1", ErrConfiguration},
		{"fast", ErrConfiguration},
		{"115200NX", ErrConfiguration},
		{"115200N1 extra", ErrConfiguration},
		{"99999999999999999999999", ErrConfiguration},
		{"115201N1", ErrUnsupportedValue},
		{"300", ErrUnsupportedValue},
		{"115200M1", ErrUnsupportedValue},
		{"115200N3", ErrUnsupportedValue},
		{"115200N0", ErrUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseLineConfig(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseLineConfig(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestLineConfigString(t *testing.T) {
	cfg := LineConfig{BaudRate: 19200, Parity: ParityOdd, StopBits: TwoStopBits}
	if got := cfg.String(); got != "19200O2" {
		t.Errorf("String() = %q, want %q", got, "19200O2")
	}

	back, err := ParseLineConfig(cfg.String())
	if err != nil {
		t.Fatalf("ParseLineConfig: %v", err)
	}
	if back != cfg {
		t.Errorf("got %+v, want %+v", back, cfg)
	}
}

func TestParityString(t *testing.T) {
	tests := map[Parity]string{
		ParityNone: "none",
		ParityEven: "even",
		ParityOdd:  "odd",
		'X':        "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Parity(%q).String() = %q, want %q", rune(p), got, want)
		}
	}
}

func TestCommandLine(t *testing.T) {
	line, err := commandLine("/opt/rcp/ot-rcp", "1")
	if err != nil {
		t.Fatalf("commandLine: %v", err)
	}
	if line != "exec /opt/rcp/ot-rcp 1" {
		t.Errorf("line = %q", line)
	}

	line, err = commandLine("/opt/rcp/ot-rcp", "")
	if err != nil {
		t.Fatalf("commandLine: %v", err)
	}
	if line != "exec /opt/rcp/ot-rcp" {
		t.Errorf("line = %q", line)
	}

	long := make([]byte, maxCommandLine)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := commandLine("/bin/true", string(long)); !errors.Is(err, ErrSpawnFailed) {
		t.Errorf("expected ErrSpawnFailed, got %v", err)
	}
}

func TestShellDefault(t *testing.T) {
	t.Setenv("SHELL", "")
	if got := shell(); got != DefaultShell {
		t.Errorf("shell() = %q, want %q", got, DefaultShell)
	}

	t.Setenv("SHELL", "/bin/bash")
	if got := shell(); got != "/bin/bash" {
		t.Errorf("shell() = %q, want /bin/bash", got)
	}
}
