package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/TimelordUK/viewlog/internal/logging"
)

// Watcher delivers change notifications for a single file. Filesystem events
// are the primary source; an optional poll interval re-checks on a timer for
// filesystems that never deliver them.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	poll     time.Duration
	onChange func()
	log      *logrus.Entry
}

// New installs a watch on path. onChange is called from Run's goroutine
// only, one call at a time.
func New(path string, poll time.Duration, onChange func(), log logrus.FieldLogger) (*Watcher, error) {
	if log == nil {
		log = logging.Discard()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(path); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	return &Watcher{
		fs:       fs,
		path:     path,
		poll:     poll,
		onChange: onChange,
		log:      logging.Named(log, "watch").WithField("path", path),
	}, nil
}

// Run delivers notifications until ctx is done or the watcher fails. A
// watcher error is returned and ends the run; cancellation returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if w.poll > 0 {
		ticker := time.NewTicker(w.poll)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Error("watcher failed")
			return fmt.Errorf("watch %s: %w", w.path, err)

		case <-tick:
			w.onChange()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		w.onChange()
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// The open handle still reads the old inode.
		w.log.WithField("op", event.Op.String()).Warn("file moved or removed")
	}
}

// Close removes the watch
func (w *Watcher) Close() error {
	return w.fs.Close()
}
