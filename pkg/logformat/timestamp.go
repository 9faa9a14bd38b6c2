package logformat

import "time"

// ClockLayout is the wall-clock layout used for line prefixes and the status bar
const ClockLayout = "15:04:05"

// Clock returns the current time. Renderers take one so tests can pin it.
type Clock func() time.Time

// SystemClock returns the local wall-clock time
func SystemClock() time.Time {
	return time.Now()
}

// Now returns c(), falling back to the system clock when c is nil
func (c Clock) Now() time.Time {
	if c == nil {
		return SystemClock()
	}
	return c()
}

// FormatTime formats a timestamp for display
func FormatTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatPrefix formats the per-line timestamp prefix, including its trailing
// separator space
func FormatPrefix(t time.Time) string {
	return t.Format(ClockLayout + " ")
}

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
