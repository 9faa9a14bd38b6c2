package term

import (
	"io"
	"os"
	"sync"
)

// Session is the scoped terminal state the viewer runs in: alternate screen,
// hidden cursor and suppressed echo. Close releases all of it and is safe to
// call more than once, so it can be both deferred and called explicitly.
type Session struct {
	out         io.Writer
	restoreEcho func() error
	once        sync.Once
	closeErr    error
}

// Begin enters the alternate screen, hides the cursor and disables echo on in.
// Failing to disable echo is not fatal: the viewer still works, typed keys are
// just visible.
func Begin(out io.Writer, in *os.File) (*Session, error) {
	s := &Session{out: out}
	if _, err := io.WriteString(out, EnterAltScreen+HideCursor); err != nil {
		return nil, err
	}
	if in != nil {
		if restore, err := DisableEcho(in); err == nil {
			s.restoreEcho = restore
		}
	}
	return s, nil
}

// EchoDisabled reports whether echo suppression was acquired.
func (s *Session) EchoDisabled() bool {
	return s.restoreEcho != nil
}

// Close restores echo, shows the cursor and leaves the alternate screen, in
// the reverse order of Begin.
func (s *Session) Close() error {
	s.once.Do(func() {
		if s.restoreEcho != nil {
			s.closeErr = s.restoreEcho()
		}
		if _, err := io.WriteString(s.out, ShowCursor+ExitAltScreen); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
		if f, ok := s.out.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
	})
	return s.closeErr
}
