package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/TimelordUK/viewlog/internal/app"
	"github.com/TimelordUK/viewlog/internal/config"
)

// Version is set at build time
var Version = "dev"

// flags holds the command line values before they are merged over the
// config file
type flags struct {
	timestamps bool
	discardOld bool
	highlight  bool
	configPath string
	logFile    string
	logLevel   string
	poll       string
}

// runFunc runs the viewer; replaced in tests
type runFunc func(ctx context.Context, opts app.Options) error

// NewCommand builds the root command
func NewCommand() *cobra.Command {
	return newCommand(app.Run)
}

func newCommand(run runFunc) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "viewlog [flags] FILE",
		Short: "Follow a growing log file with a pinned status bar",
		Long: `viewlog shows the tail of a file as it grows. Long lines wrap to the
terminal width, existing ANSI colors pass through, and the bottom row shows
which file is being followed and since when. When the file is truncated
the screen starts over.`,
		Example: `  # Follow a log
  viewlog /var/log/app.log

  # Prefix each line with the time it was shown
  viewlog -t ~/logs/worker.log

  # Drop scrollback whenever the file is truncated
  viewlog -d build.log`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), app.Options{Path: args[0], Config: cfg})
		},
	}

	cmd.Flags().BoolVarP(&f.timestamps, "timestamps", "t", false, "Prefix each line with the time it was shown")
	cmd.Flags().BoolVarP(&f.discardOld, "discard-old", "d", false, "Clear scrollback when the file is truncated")
	cmd.Flags().BoolVar(&f.highlight, "highlight", false, "Syntax highlight lines by file type")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (default "+config.GetConfigPath()+")")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Write diagnostics to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.poll, "poll", "", "Also re-check the file at this interval, e.g. 500ms")

	return cmd
}

// resolveConfig loads the config file and applies flags that were set
// explicitly on the command line
func resolveConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("timestamps") {
		cfg.Display.Timestamps = f.timestamps
	}
	if set("discard-old") {
		cfg.Display.DiscardOld = f.discardOld
	}
	if set("highlight") {
		cfg.Display.Highlight = f.highlight
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
		if f.logFile != "" {
			if cfg.Log.File, err = config.ExpandPath(f.logFile); err != nil {
				return nil, fmt.Errorf("log file: %w", err)
			}
		}
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("poll") {
		if err := cfg.Watch.PollInterval.UnmarshalText([]byte(f.poll)); err != nil {
			return nil, fmt.Errorf("invalid --poll: %w", err)
		}
	}
	return cfg, nil
}

// Execute runs the root command with fang
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, NewCommand(),
		fang.WithVersion(Version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintf(w, "viewlog: %v\n", err)
		}),
	)
}
