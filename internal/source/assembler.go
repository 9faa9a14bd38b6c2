package source

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tail is the file an Assembler reads from. *io.TailFile implements it.
type Tail interface {
	ReadToEnd() ([]byte, error)
	SeekEnd() (int64, error)
	SeekTo(offset int64) error
	Offset() int64
	Path() string
}

// Change describes what one Sync observed
type Change struct {
	Truncated bool
	Bytes     int // bytes read
	Lines     int // lines completed and flushed
}

// Assembler accumulates bytes appended to a file into logical lines and tells
// an append apart from a truncation by comparing file offsets.
type Assembler struct {
	file    Tail
	decoder *Decoder
	pending []rune
	log     logrus.FieldLogger
}

// NewAssembler creates an assembler reading from file
func NewAssembler(file Tail, log logrus.FieldLogger) *Assembler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Assembler{
		file:    file,
		decoder: NewDecoder(),
		log:     log,
	}
}

// Sync reads everything appended since the last call, then moves to end of
// file and compares offsets. If the file went from non-empty to empty the
// pending line is discarded and the change is reported as a truncation.
// Otherwise every completed line is handed to flush, which must not retain it.
func (a *Assembler) Sync(flush func(line []rune)) (Change, error) {
	oldOffset := a.file.Offset()

	data, err := a.read()
	if err != nil {
		return Change{}, err
	}
	readOffset := a.file.Offset()

	end, err := a.file.SeekEnd()
	if err != nil {
		return Change{}, fmt.Errorf("seek %s: %w", a.file.Path(), err)
	}

	if end == 0 && oldOffset != 0 {
		a.Reset()
		return Change{Truncated: true}, nil
	}

	switch {
	case end > readOffset:
		// Written between the read and the seek; the next notification reads it.
		if err := a.file.SeekTo(readOffset); err != nil {
			return Change{}, fmt.Errorf("seek %s: %w", a.file.Path(), err)
		}
	case end < readOffset:
		// Bytes held for a split character belong to content that is gone.
		a.decoder.Reset()
		a.log.WithFields(logrus.Fields{
			"offset": readOffset,
			"size":   end,
		}).Warn("file shrank, continuing from new end")
	}

	lines := a.Feed(data, flush)
	return Change{Bytes: len(data), Lines: lines}, nil
}

// Feed decodes data and appends it to the pending line, flushing at each line
// feed. Carriage returns are dropped. It returns the number of flushed lines.
func (a *Assembler) Feed(data []byte, flush func(line []rune)) int {
	flushed := 0
	for _, r := range a.decoder.Decode(data) {
		switch r {
		case '\n':
			flush(a.pending)
			a.pending = a.pending[:0]
			flushed++
		case '\r':
		default:
			a.pending = append(a.pending, r)
		}
	}
	return flushed
}

// Pending returns the current unfinished line
func (a *Assembler) Pending() []rune {
	return a.pending
}

// Reset discards the unfinished line and any partial character
func (a *Assembler) Reset() {
	a.pending = a.pending[:0]
	a.decoder.Reset()
}

// read reads to end of file, retrying once before giving up
func (a *Assembler) read() ([]byte, error) {
	data, err := a.file.ReadToEnd()
	if err == nil {
		return data, nil
	}
	a.log.WithError(err).Warn("read failed, retrying")

	more, err := a.file.ReadToEnd()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a.file.Path(), err)
	}
	return append(data, more...), nil
}
