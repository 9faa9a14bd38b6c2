package view

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TimelordUK/viewlog/internal/config"
	"github.com/TimelordUK/viewlog/internal/highlight"
	tailio "github.com/TimelordUK/viewlog/internal/io"
	"github.com/TimelordUK/viewlog/internal/logging"
	"github.com/TimelordUK/viewlog/internal/render"
	"github.com/TimelordUK/viewlog/internal/source"
	"github.com/TimelordUK/viewlog/pkg/logformat"
)

// Options configures a Viewer
type Options struct {
	Path       string // file to follow, already resolved
	Name       string // display name; defaults to Path with home abbreviated
	Rows, Cols int
	Timestamps bool
	DiscardOld bool
	Highlight  bool
	Out        io.Writer
	Clock      logformat.Clock
	Log        logrus.FieldLogger
}

// Viewer owns everything needed to follow one file: the open handle, the
// pending line, the screen with its cursor and the status bar state. It is
// not safe for concurrent use; callers serialize OnChange.
type Viewer struct {
	name       string
	discardOld bool

	file      *tailio.TailFile
	assembler *source.Assembler
	screen    *render.Screen
	lines     *render.LineRenderer
	header    *render.HeaderRenderer
	highlight highlight.Highlighter
	clock     logformat.Clock
	log       *logrus.Entry

	label string
	since time.Time
}

// New opens the file and prepares a viewer. Nothing is written until Start.
func New(opts Options) (*Viewer, error) {
	if opts.Rows < 2 || opts.Cols < 1 {
		return nil, fmt.Errorf("terminal too small: %dx%d", opts.Cols, opts.Rows)
	}

	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	entry := logging.Named(log, "viewer")

	file, err := tailio.OpenTail(opts.Path)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = config.DisplayName(opts.Path)
	}

	clock := opts.Clock
	screen := render.NewScreen(opts.Out, opts.Rows, opts.Cols)

	return &Viewer{
		name:       name,
		discardOld: opts.DiscardOld,
		file:       file,
		assembler:  source.NewAssembler(file, entry),
		screen:     screen,
		lines:      render.NewLineRenderer(screen, clock, opts.Timestamps),
		header:     render.NewHeaderRenderer(screen),
		highlight:  highlight.New(opts.Path, opts.Highlight),
		clock:      clock,
		log:        entry,
		label:      render.LabelStarted,
		since:      clock.Now(),
	}, nil
}

// Start clears the screen, draws the status bar and renders what the file
// already contains.
func (v *Viewer) Start() error {
	v.screen.Clear(false)
	v.flushLine(nil)
	if err := v.screen.Flush(); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}

	v.log.WithFields(logrus.Fields{
		"path":       v.file.Path(),
		"timestamps": v.lines.Timestamps(),
		"discard":    v.discardOld,
	}).Info("viewing")

	return v.OnChange()
}

// OnChange handles one change notification. Bursts of notifications are
// harmless since each call resynchronises on the actual file offset.
func (v *Viewer) OnChange() error {
	change, err := v.assembler.Sync(v.flushLine)
	if err != nil {
		return err
	}

	if change.Truncated {
		v.truncate()
	} else if change.Bytes > 0 {
		v.log.WithFields(logrus.Fields{
			"bytes": change.Bytes,
			"lines": change.Lines,
		}).Debug("appended")
	}

	if err := v.screen.Flush(); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// truncate starts over after the file was emptied. The unfinished line is
// dropped, not flushed.
func (v *Viewer) truncate() {
	v.label = render.LabelCreated
	v.since = v.clock.Now()

	v.screen.Clear(v.discardOld)
	v.header.Render(v.status(true))

	v.log.WithField("at", logformat.FormatTime(v.since)).Info("file truncated")
}

// flushLine renders one completed line and refreshes the status bar
func (v *Viewer) flushLine(line []rune) {
	v.lines.Render(v.highlight.Highlight(line))
	v.header.Render(v.status(false))
}

func (v *Viewer) status(truncated bool) render.Status {
	return render.Status{
		Name:      v.name,
		Label:     v.label,
		Since:     v.since,
		Truncated: truncated,
	}
}

// Status returns what the status bar currently shows, apart from the
// truncation note.
func (v *Viewer) Status() render.Status {
	return v.status(false)
}

// Cursor returns the tracked cursor position
func (v *Viewer) Cursor() render.Cursor {
	return v.screen.Cursor()
}

// Pending returns a copy of the unfinished line
func (v *Viewer) Pending() string {
	return string(v.assembler.Pending())
}

// Close releases the file handle
func (v *Viewer) Close() error {
	return v.file.Close()
}
