package transport

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/mash-protocol/mash-serial/pkg/hdlc"
	"github.com/mash-protocol/mash-serial/pkg/log"
	"github.com/mash-protocol/mash-serial/pkg/serial"
)

// Manager errors.
var (
	// ErrAlreadyOpen is returned by Open and Attach while a channel is live.
	ErrAlreadyOpen = errors.New("transport: channel already open")

	// ErrNotOpen is returned when no channel is live.
	ErrNotOpen = errors.New("transport: channel not open")

	// ErrWouldBlock is returned by SendFrame when the channel cannot accept
	// more bytes. The frame is abandoned; the caller decides whether to resend.
	ErrWouldBlock = errors.New("transport: write would block")

	// ErrWriteFailed is returned by SendFrame when the channel rejects a write.
	ErrWriteFailed = errors.New("transport: write failed")

	// ErrReentrant is returned by Process when called from a listener callback.
	ErrReentrant = errors.New("transport: re-entrant process call")
)

// Provisioning errors, re-exported for callers of Open.
var (
	ErrInvalidTarget = serial.ErrInvalidTarget
	ErrConfiguration = serial.ErrConfiguration
)

// ProvisionFunc materializes a channel from a target and its configuration
// string.
type ProvisionFunc func(target, config string, opts serial.Options) (Channel, error)

// Config configures a Manager. The zero value is usable.
type Config struct {
	// AllowSpawn permits Open on regular files, which are run as the
	// co-processor behind a pseudo-terminal.
	AllowSpawn bool

	// MaxFrameSize bounds both the encoded outbound frame and the decoded
	// inbound payload plus trailer. 0 or values above hdlc.MaxFrameSize select
	// hdlc.MaxFrameSize.
	MaxFrameSize int

	// Logger receives operational logs. Defaults to slog.Default().
	Logger *slog.Logger

	// ProtocolLogger receives capture events. Nil disables capture.
	ProtocolLogger log.Logger

	// FatalHandler is called on unrecoverable errors. Defaults to
	// DefaultFatalHandler(Logger).
	FatalHandler FatalHandler

	// Provision opens channels for Open. Defaults to serial.Provision.
	Provision ProvisionFunc
}

// Stats holds link counters. They accumulate across channels.
type Stats struct {
	FramesSent     uint64
	FramesReceived uint64
	BytesWritten   uint64
	BytesRead      uint64
	ChecksumErrors uint64
	OverflowErrors uint64
	WouldBlock     uint64
	WriteErrors    uint64
}

// Manager owns one channel and moves frames across it.
// A Manager is not safe for concurrent use.
type Manager struct {
	listener  Listener
	logger    *slog.Logger
	protocol  log.Logger
	onFatal   FatalHandler
	provision ProvisionFunc
	spawn     bool

	ch        Channel
	channelID string
	target    string

	tx         hdlc.FrameBuffer
	rx         [hdlc.MaxFrameSize]byte
	decoder    *hdlc.Decoder
	processing bool
	stats      Stats
}

// NewManager creates a closed Manager that reports to listener.
func NewManager(listener Listener, cfg Config) *Manager {
	if listener == nil {
		listener = ListenerFuncs{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FatalHandler == nil {
		cfg.FatalHandler = DefaultFatalHandler(cfg.Logger)
	}
	if cfg.Provision == nil {
		cfg.Provision = provisionSerial
	}

	m := &Manager{
		listener:  listener,
		logger:    cfg.Logger,
		protocol:  cfg.ProtocolLogger,
		onFatal:   cfg.FatalHandler,
		provision: cfg.Provision,
		spawn:     cfg.AllowSpawn,
	}
	m.tx.SetLimit(cfg.MaxFrameSize)
	m.decoder = hdlc.NewDecoder(&dispatcher{m: m}, cfg.MaxFrameSize)
	return m
}

func provisionSerial(target, config string, opts serial.Options) (Channel, error) {
	ch, err := serial.Provision(target, config, opts)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// Open provisions a channel for target. For a device, config is the line
// specification (e.g. "115200N1"); for a spawned program it is the argument
// string.
//
// A missing or unsupported target and a malformed line specification are
// returned as errors. Values the line cannot be programmed with, and failures
// to set up the line or start the program, are fatal.
func (m *Manager) Open(target, config string) error {
	if m.ch != nil {
		return ErrAlreadyOpen
	}

	ch, err := m.provision(target, config, serial.Options{AllowSpawn: m.spawn})
	if err != nil {
		if code, fatal := openErrorCode(err); fatal {
			return m.fatal(code, "open", err)
		}
		return err
	}

	m.attach(ch, target)
	return nil
}

// Attach takes ownership of an already open channel.
func (m *Manager) Attach(ch Channel) error {
	if m.ch != nil {
		return ErrAlreadyOpen
	}
	target := ""
	if t, ok := ch.(interface{ Target() string }); ok {
		target = t.Target()
	}
	m.attach(ch, target)
	return nil
}

func (m *Manager) attach(ch Channel, target string) {
	m.ch = ch
	m.target = target
	m.channelID = uuid.New().String()
	m.decoder.Reset()

	pid := 0
	if p, ok := ch.(interface{ Pid() int }); ok {
		pid = p.Pid()
	}
	m.logger.Info("channel open",
		slog.String("channel_id", m.channelID),
		slog.String("target", target),
		slog.Int("fd", ch.Fd()),
	)
	m.logState("CLOSED", "OPEN", "", pid)
}

// Close closes the channel and, when it is a spawned program, waits for the
// program to exit. Calling Close on a closed Manager panics.
func (m *Manager) Close() error {
	if m.ch == nil {
		panic("transport: Close on a closed manager")
	}

	err := m.ch.Close()
	m.logState("OPEN", "CLOSED", reason(err), 0)
	m.logger.Info("channel closed", slog.String("channel_id", m.channelID))

	m.ch = nil
	m.decoder.Reset()
	m.tx.Reset()
	return err
}

func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsOpen reports whether a channel is live.
func (m *Manager) IsOpen() bool { return m.ch != nil }

// Fd returns the live channel's descriptor, or -1.
func (m *Manager) Fd() int {
	if m.ch == nil {
		return -1
	}
	return m.ch.Fd()
}

// ChannelID returns the identifier of the live channel used in capture events.
func (m *Manager) ChannelID() string { return m.channelID }

// Stats returns a snapshot of the link counters.
func (m *Manager) Stats() Stats { return m.stats }

// SendFrame encodes payload and writes the whole frame.
//
// Short writes are resumed until the frame is out. If the channel would
// block, SendFrame returns ErrWouldBlock; any other write failure returns
// ErrWriteFailed. In both cases the rest of the frame is abandoned. A payload
// that does not fit the frame size fails with hdlc.ErrBufferFull before
// anything is written.
func (m *Manager) SendFrame(payload []byte) error {
	if m.ch == nil {
		return ErrNotOpen
	}

	m.tx.Reset()
	if err := hdlc.EncodeFrame(payload, &m.tx); err != nil {
		return err
	}

	data := m.tx.Bytes()
	for len(data) > 0 {
		n, err := m.ch.Write(data)
		if n > 0 {
			m.stats.BytesWritten += uint64(n)
			data = data[n:]
		}
		switch {
		case err == nil && n > 0:
		case errors.Is(err, unix.EINTR):
		case errors.Is(err, unix.EAGAIN):
			m.stats.WouldBlock++
			return ErrWouldBlock
		case err == nil:
			m.stats.WriteErrors++
			m.logError(log.DirectionOut, log.LayerChannel, log.ErrorKindWrite, "write", "write accepted no bytes", nil)
			return fmt.Errorf("%w: no progress", ErrWriteFailed)
		default:
			m.stats.WriteErrors++
			m.logError(log.DirectionOut, log.LayerChannel, log.ErrorKindWrite, "write", err.Error(), nil)
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	}

	m.stats.FramesSent++
	m.logFrame(log.DirectionOut, payload, m.tx.Len())
	return nil
}

// Process performs one read and decodes what arrived, dispatching frames
// and decode errors to the listener before it returns.
//
// Nothing to read is not an error. Any other read failure is fatal.
func (m *Manager) Process() error {
	if m.ch == nil {
		return ErrNotOpen
	}
	if m.processing {
		return ErrReentrant
	}
	m.processing = true
	defer func() { m.processing = false }()

	n, err := m.ch.Read(m.rx[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return nil
		}
		m.logError(log.DirectionIn, log.LayerChannel, log.ErrorKindRead, "read", err.Error(), nil)
		return m.fatal(ExitFailure, "read", err)
	}
	if n > 0 {
		m.stats.BytesRead += uint64(n)
		m.decoder.Decode(m.rx[:n])
	}
	return nil
}

func (m *Manager) fatal(code ExitCode, op string, err error) error {
	fe := &FatalError{Code: code, Op: op, Err: err}
	m.logError(log.DirectionIn, log.LayerChannel, log.ErrorKindFatal, op, fe.Error(), nil)
	m.onFatal(fe)
	return fe
}

// dispatcher forwards decoder results to the listener, keeping the
// hdlc.Handler methods off the Manager's API.
type dispatcher struct {
	m *Manager
}

func (d *dispatcher) OnFrameReceived(frame []byte) {
	m := d.m
	m.stats.FramesReceived++
	m.logFrame(log.DirectionIn, frame, 0)
	m.listener.OnFrameReceived(frame)
}

func (d *dispatcher) OnDecodeError(err error, partial []byte) {
	m := d.m
	kind := log.ErrorKindChecksum
	if errors.Is(err, hdlc.ErrBufferOverflow) {
		kind = log.ErrorKindOverflow
		m.stats.OverflowErrors++
	} else {
		m.stats.ChecksumErrors++
	}
	m.logger.Warn("frame decode error",
		slog.String("channel_id", m.channelID),
		slog.Any("error", err),
		slog.Int("buffered", len(partial)),
	)
	m.logError(log.DirectionIn, log.LayerFraming, kind, "decode", err.Error(), partial)
	m.listener.OnDecodeError(err, partial)
}
