// Package terminal owns the controlling tty: acquisition, dimension
// query, raw mode, and the cursor mark escape pair.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Device is the controlling terminal in raw mode. Reads deliver raw
// keystroke bytes; writes carry the interactive UI. Close restores
// cooked mode and is safe to call on every exit path.
type Device struct {
	tty      *os.File
	fd       int
	prev     *term.State
	rows     int
	cols     int
	restored bool
}

// Open acquires /dev/tty, queries its size, and enters raw
// (non-canonical, no-echo) mode. Any failure here is fatal to the
// caller; there is no degraded mode without a controllable terminal.
func Open() (*Device, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	fd := int(tty.Fd())

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("query terminal size: %w", err)
	}

	prev, err := term.MakeRaw(fd)
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	return &Device{tty: tty, fd: fd, prev: prev, rows: rows, cols: cols}, nil
}

// Rows returns the terminal height cached at open time.
func (d *Device) Rows() int { return d.rows }

// Cols returns the terminal width cached at open time.
func (d *Device) Cols() int { return d.cols }

func (d *Device) Read(p []byte) (int, error)  { return d.tty.Read(p) }
func (d *Device) Write(p []byte) (int, error) { return d.tty.Write(p) }

// Close restores cooked mode and releases the tty exactly once;
// repeated calls are no-ops.
func (d *Device) Close() error {
	if d.restored {
		return nil
	}
	d.restored = true

	restoreErr := term.Restore(d.fd, d.prev)
	closeErr := d.tty.Close()
	if restoreErr != nil {
		return fmt.Errorf("restore terminal: %w", restoreErr)
	}
	return closeErr
}

// Marks returns the cursor save/restore escape pair for the given
// TERM_PROGRAM value. Apple's Terminal.app honors the legacy DEC pair;
// everything else gets the ANSI pair.
func Marks(termProgram string) (save, restore string) {
	if termProgram == "Apple_Terminal" {
		return "\x1b7", "\x1b8"
	}
	return "\x1b[s", "\x1b[u"
}
