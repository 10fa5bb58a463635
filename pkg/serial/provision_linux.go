package serial

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var baudRates = map[int]uint32{
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

// OpenDevice opens a character device for non-blocking duplex access
// without making it the controlling terminal. Terminals are switched to raw
// mode with cfg applied and their queues flushed.
func OpenDevice(path string, cfg LineConfig) (*Channel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return openDevice(path, func() (LineConfig, error) { return cfg, nil })
}

// openDeviceSpec is OpenDevice for an unparsed line specification. The
// specification is only parsed when the device turns out to be a terminal;
// other character devices ignore it.
func openDeviceSpec(path, spec string) (*Channel, error) {
	return openDevice(path, func() (LineConfig, error) { return ParseLineConfig(spec) })
}

func openDevice(path string, lineConfig func() (LineConfig, error)) (ch *Channel, err error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrInvalidTarget, path, err)
	}

	// prevent handle leaks
	defer func() {
		if err != nil {
			unix.Close(fd)
		}
	}()

	if term.IsTerminal(fd) {
		cfg, err := lineConfig()
		if err != nil {
			return nil, err
		}
		if err := configureLine(fd, cfg); err != nil {
			return nil, err
		}
	}

	return &Channel{fd: fd, target: path}, nil
}

// Spawn starts command under a pseudo-terminal and returns the master side.
// The program runs as "$SHELL -c 'exec command args'" in its own session
// with the terminal as stdin, stdout, stderr and controlling tty. No other
// descriptors are inherited.
func Spawn(command, args string) (*Channel, error) {
	line, err := commandLine(command, args)
	if err != nil {
		return nil, err
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}
	defer tty.Close()

	if err := setRaw(int(tty.Fd())); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	sh := shell()
	cmd := exec.Command(sh, "-c", line)
	cmd.Env = append(os.Environ(), "SHELL="+sh)
	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	if err := cmd.Start(); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	// own a plain descriptor so the runtime poller never touches it
	fd, err := unix.FcntlInt(ptmx.Fd(), unix.F_DUPFD_CLOEXEC, 0)
	ptmx.Close()
	if err == nil {
		if err = unix.SetNonblock(fd, true); err != nil {
			unix.Close(fd)
		}
	}
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("%w: set nonblock: %v", ErrSpawnFailed, err)
	}

	return &Channel{fd: fd, target: command, cmd: cmd}, nil
}

func configureLine(fd int, cfg LineConfig) error {
	tios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("%w: tcgetattr: %v", ErrLineSetup, err)
	}

	makeRaw(tios)
	if err := applyLineConfig(tios, cfg); err != nil {
		return err
	}

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tios); err != nil {
		return fmt.Errorf("%w: tcsetattr: %v", ErrLineSetup, err)
	}
	if err := unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIOFLUSH); err != nil {
		return fmt.Errorf("%w: tcflush: %v", ErrLineSetup, err)
	}
	return nil
}

// setRaw switches a terminal to raw mode, keeping its speed.
func setRaw(fd int) error {
	tios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	makeRaw(tios)
	return unix.IoctlSetTermios(fd, unix.TCSETS, tios)
}

// makeRaw mirrors cfmakeraw(3) and selects 8 data bits, hangup on close,
// receiver enabled and modem control lines ignored.
func makeRaw(tios *unix.Termios) {
	tios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF | unix.INPCK
	tios.Oflag &^= unix.OPOST
	tios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tios.Cflag = tios.Cflag&(unix.CBAUD|unix.CBAUDEX) |
		unix.CS8 | unix.HUPCL | unix.CREAD | unix.CLOCAL
	tios.Cc[unix.VMIN] = 1
	tios.Cc[unix.VTIME] = 0
}

func applyLineConfig(tios *unix.Termios, cfg LineConfig) error {
	speed, ok := baudRates[cfg.BaudRate]
	if !ok {
		return fmt.Errorf("%w: baud rate %d", ErrUnsupportedValue, cfg.BaudRate)
	}

	switch cfg.Parity {
	case ParityNone:
		tios.Cflag &^= unix.PARENB | unix.PARODD
	case ParityEven:
		tios.Cflag |= unix.PARENB
		tios.Cflag &^= unix.PARODD
	case ParityOdd:
		tios.Cflag |= unix.PARENB | unix.PARODD
	default:
		return fmt.Errorf("%w: parity %q", ErrUnsupportedValue, rune(cfg.Parity))
	}

	switch cfg.StopBits {
	case OneStopBit:
		tios.Cflag &^= unix.CSTOPB
	case TwoStopBits:
		tios.Cflag |= unix.CSTOPB
	default:
		return fmt.Errorf("%w: stop bits %d", ErrUnsupportedValue, int(cfg.StopBits))
	}

	tios.Cflag &^= unix.CBAUD | unix.CBAUDEX
	tios.Cflag |= speed
	tios.Ispeed = speed
	tios.Ospeed = speed
	return nil
}
