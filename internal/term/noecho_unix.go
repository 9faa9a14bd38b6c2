//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DisableEcho clears the ECHO flag on f and returns a func that restores the
// previous mode, or nil when f is not a terminal. Only echo is touched; output
// processing stays cooked so "\n" still moves to the start of the next row.
func DisableEcho(f *os.File) (func() error, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, nil
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	noEcho := *orig
	noEcho.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &noEcho); err != nil {
		return nil, fmt.Errorf("disable echo: %w", err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, ioctlWriteTermios, orig)
	}, nil
}
