package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/TimelordUK/viewlog/internal/config"
	"github.com/TimelordUK/viewlog/internal/logging"
	"github.com/TimelordUK/viewlog/internal/term"
	"github.com/TimelordUK/viewlog/internal/view"
	"github.com/TimelordUK/viewlog/internal/watch"
	"github.com/TimelordUK/viewlog/pkg/logformat"
)

// Options are the resolved inputs of one run
type Options struct {
	Path   string
	Config *config.Config
	In     *os.File // terminal input; echo is disabled on it
	Out    *os.File // terminal output
}

// Run follows one file until ctx is cancelled or a fatal error occurs.
// Startup failures return before the terminal is touched. Once the session
// has begun it is always restored before Run returns.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logging.Named(logger, "app")

	path, err := config.ExpandPath(opts.Path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	rows, cols, err := term.Size(opts.Out)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	viewer, err := view.New(view.Options{
		Path:       path,
		Rows:       rows,
		Cols:       cols,
		Timestamps: cfg.Display.Timestamps,
		DiscardOld: cfg.Display.DiscardOld,
		Highlight:  cfg.Display.Highlight,
		Out:        opts.Out,
		Clock:      logformat.SystemClock,
		Log:        logger,
	})
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer viewer.Close()

	var program *tea.Program
	watcher, err := watch.New(path, cfg.Watch.PollInterval.Duration, func() {
		program.Send(fileChangedMsg{})
	}, logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	log.WithFields(logrus.Fields{
		"path": path,
		"rows": rows,
		"cols": cols,
		"poll": cfg.Watch.PollInterval.Duration.String(),
	}).Info("starting")

	session, err := term.Begin(opts.Out, opts.In)
	if err != nil {
		return err
	}
	defer session.Close()
	if !session.EchoDisabled() {
		log.Debug("input is not a terminal, echo left alone")
	}

	if err := viewer.Start(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	model := newModel(viewer)
	program = tea.NewProgram(model,
		tea.WithContext(gctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		if _, err := program.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("event loop: %w", err)
		}
		if err := model.Err(); err != nil {
			return err
		}
		// The loop only ends on its own after an error; stop the watcher too.
		return context.Canceled
	})

	err = g.Wait()
	log.WithField("changes", model.Changes()).Info("stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
