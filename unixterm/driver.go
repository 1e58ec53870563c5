// Package unixterm is the concrete Unix platform driver for the terminal
// interface: raw-mode entry/exit, the file descriptor byte source, and
// the channel-based signal source the input pipeline is driven from. It
// adapts the teacher's term.go/signal_unix.go raw-mode and SIGWINCH
// handling from a single-shot key reader into the streaming ByteSource/
// SignalSource pair input.Pipeline expects.
package unixterm

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
	"zgo.at/tvis/input"
)

// Driver owns a terminal file descriptor in raw mode and feeds bytes and
// signals to whatever is driving an input.Pipeline.
type Driver struct {
	fd      int
	oldState *term.State
	sigCh   chan input.SignalCode
	rawCh   chan os.Signal
}

// Open puts fd (typically os.Stdin.Fd()) into raw mode and starts
// forwarding SIGWINCH/SIGTERM/SIGINT/SIGQUIT as input.SignalCode values.
// Close must be called to restore the prior terminal state and stop the
// signal forwarder.
func Open(fd uintptr) (*Driver, error) {
	old, err := term.MakeRaw(int(fd))
	if err != nil {
		return nil, fmt.Errorf("unixterm.Open: %w", err)
	}
	d := &Driver{
		fd:       int(fd),
		oldState: old,
		sigCh:    make(chan input.SignalCode, 8),
		rawCh:    make(chan os.Signal, 8),
	}
	signal.Notify(d.rawCh, syscall.SIGWINCH, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go d.forwardSignals()
	return d, nil
}

// Close restores the terminal to its pre-raw-mode state and stops signal
// forwarding. The Driver must not be used afterward.
func (d *Driver) Close() error {
	signal.Stop(d.rawCh)
	close(d.rawCh)
	return term.Restore(d.fd, d.oldState)
}

func (d *Driver) forwardSignals() {
	for sig := range d.rawCh {
		switch sig {
		case syscall.SIGWINCH:
			d.sigCh <- input.SigResize
		case syscall.SIGTERM:
			d.sigCh <- input.SigTerminate
		case syscall.SIGINT:
			d.sigCh <- input.SigInterrupt
		case syscall.SIGQUIT:
			d.sigCh <- input.SigQuit
		}
	}
	close(d.sigCh)
}

// Signals implements input.SignalSource.
func (d *Driver) Signals() <-chan input.SignalCode { return d.sigCh }

// ReadByte implements input.ByteSource by issuing a blocking single-byte
// read against the raw fd.
func (d *Driver) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(d.fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("unixterm: read: eof")
		}
		return buf[0], nil
	}
}

// Size reports the current terminal dimensions in columns and rows.
func Size(fd uintptr) (cols, rows int, err error) {
	return term.GetSize(int(fd))
}

// IsTerminal reports whether fd refers to an interactive terminal.
func IsTerminal(fd uintptr) bool { return term.IsTerminal(int(fd)) }
