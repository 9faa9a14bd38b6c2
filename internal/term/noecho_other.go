//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import "os"

// DisableEcho is a no-op on platforms without termios.
func DisableEcho(f *os.File) (func() error, error) {
	return nil, nil
}
