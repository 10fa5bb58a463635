// Command mash-link runs the host side of a serial co-processor link.
//
// It opens a character device (or, with -allow-spawn, runs a program behind
// a pseudo-terminal), then services the link: received frames are printed as
// hex, and frames typed as hex are sent.
//
// Usage:
//
//	mash-link [flags]
//
// Flags:
//
//	-config string        YAML configuration file
//	-target string        Device path, or program path with -allow-spawn
//	-line string          Line spec for devices, e.g. 115200N1; program arguments when spawning
//	-allow-spawn          Allow running a regular file as the co-processor
//	-protocol-log string  Capture file (.mlog) for link events
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-interactive          Interactive console instead of reading hex lines from stdin
//
// Examples:
//
//	# Talk to a radio co-processor on USB
//	mash-link -target /dev/ttyACM0 -line 460800N1 -interactive
//
//	# Run a simulated co-processor and capture the traffic
//	mash-link -target ./ot-rcp -line 1 -allow-spawn -protocol-log link.mlog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mash-protocol/mash-serial/pkg/config"
	"github.com/mash-protocol/mash-serial/pkg/log"
	"github.com/mash-protocol/mash-serial/pkg/transport"
)

var (
	configFile  = flag.String("config", "", "YAML configuration file")
	target      = flag.String("target", "", "Device path, or program path with -allow-spawn")
	line        = flag.String("line", config.DefaultLine, "Line spec for devices (e.g. 115200N1), or program arguments when spawning")
	allowSpawn  = flag.Bool("allow-spawn", false, "Allow running a regular file as the co-processor")
	protocolLog = flag.String("protocol-log", "", "Capture file (.mlog) for link events")
	logLevel    = flag.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	interactive = flag.Bool("interactive", false, "Interactive console")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(int(transport.ExitInvalidArguments))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		cons   *console
		out    io.Writer = os.Stdout
		errOut io.Writer = os.Stderr
	)
	if *interactive {
		cons, err = newConsole()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start console: %v\n", err)
			os.Exit(int(transport.ExitFailure))
		}
		out, errOut = cons.rl.Stdout(), cons.rl.Stderr()
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	protocol, closeProtocol, err := setupProtocolLogger(cfg, logger)
	if err != nil {
		logger.Error("Failed to open protocol log", "path", cfg.ProtocolLog, "error", err)
		os.Exit(int(transport.ExitFailure))
	}
	defer closeProtocol()

	exitFatal := transport.DefaultFatalHandler(logger)
	m := transport.NewManager(&printer{out: out}, transport.Config{
		AllowSpawn:     cfg.AllowSpawn,
		MaxFrameSize:   cfg.MaxFrameSize,
		Logger:         logger,
		ProtocolLogger: protocol,
		FatalHandler: func(fe *transport.FatalError) {
			// restore the terminal before exiting
			if cons != nil {
				cons.rl.Close()
			}
			closeProtocol()
			exitFatal(fe)
		},
	})
	if err := m.Open(cfg.Target, cfg.Line); err != nil {
		logger.Error("Failed to open link", "target", cfg.Target, "error", err)
		closeProtocol()
		os.Exit(int(transport.ExitFailure))
	}

	l := newLink(m, cfg.PollInterval)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- l.run(ctx) }()

	if cons != nil {
		cons.link = l
		go cons.run(ctx, cancel)
	} else {
		go readHexLines(ctx, os.Stdin, l, logger)
	}

	err = <-loopErr
	cancel()

	if cerr := m.Close(); cerr != nil {
		logger.Warn("Error closing link", "error", cerr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Link failed", "error", err)
		closeProtocol()
		os.Exit(int(transport.ExitFailure))
	}
}

// loadConfig applies explicitly set flags over the configuration file.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return cfg, err
		}
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromFlags := *configFile == ""

	if explicit["target"] || fromFlags {
		cfg.Target = *target
	}
	if explicit["line"] || fromFlags {
		cfg.Line = *line
	}
	if explicit["allow-spawn"] || fromFlags {
		cfg.AllowSpawn = *allowSpawn
	}
	if explicit["protocol-log"] || fromFlags {
		cfg.ProtocolLog = *protocolLog
	}
	if explicit["log-level"] || fromFlags {
		cfg.LogLevel = *logLevel
	}

	return cfg, cfg.Validate()
}

// setupProtocolLogger builds the capture pipeline: the .mlog file if one is
// configured, plus the slog adapter at debug level.
func setupProtocolLogger(cfg config.Config, logger *slog.Logger) (log.Logger, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if cfg.ProtocolLog != "" {
		fl, err := log.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, closeFn, err
		}
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Err(); err != nil {
				logger.Warn("Protocol log incomplete", "path", cfg.ProtocolLog, "events", fl.Count(), "error", err)
			}
			fl.Close()
		}
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	if len(loggers) == 0 {
		return nil, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}
