// Package rawterm puts stdin into cbreak mode so a single keystroke
// can be read without waiting for Enter, for the -s headless pause/
// quit control spec.md §6.3 names. It is grounded on the teacher's
// debugger/colorterm/easyterm package (termios attribute save/restore
// around Cfmakecbreak/Tcsetattr), pared down from that package's full
// canonical/raw/cbreak mode-switching and SIGWINCH geometry tracking
// (this core has no interactive line editor to support) to the one
// mode a headless frontend needs.
package rawterm

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Terminal restores stdin's original mode when Close is called.
type Terminal struct {
	fd      uintptr
	restore syscall.Termios
}

// Enable puts stdin into cbreak mode (unbuffered, but with signal
// processing and echo still enabled) and returns a Terminal whose
// Close restores the prior mode.
func Enable() (*Terminal, error) {
	fd := os.Stdin.Fd()

	var saved syscall.Termios
	if err := termios.Tcgetattr(fd, &saved); err != nil {
		return nil, err
	}

	cbreak := saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(fd, termios.TCIFLUSH, &cbreak); err != nil {
		return nil, err
	}

	return &Terminal{fd: fd, restore: saved}, nil
}

// Close restores stdin's original terminal mode.
func (t *Terminal) Close() error {
	return termios.Tcsetattr(t.fd, termios.TCIFLUSH, &t.restore)
}

// ReadKey blocks for a single byte from stdin.
func ReadKey() (byte, error) {
	var b [1]byte
	_, err := os.Stdin.Read(b[:])
	return b[0], err
}
