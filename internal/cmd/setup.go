package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/sftp-mounts/bookmarks"
	"github.com/dendrascience/sftp-mounts/config"
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/dendrascience/sftp-mounts/mountdir"
	"github.com/dendrascience/sftp-mounts/sshfs"
	"github.com/dendrascience/sftp-mounts/version"
	"github.com/spf13/cobra"
)

const configEnv = config.EnvConfig

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	noColor    bool
	verbose    bool

	// dirs overrides the mount directory manager in tests.
	dirs *mountdir.Manager
	// runner overrides the process runner in tests.
	runner sshfs.Runner
}

func (g *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadSettings never fails: an unreadable file becomes a settings value
// that fails validation, so it is reported like any other settings error.
func (g *globalOptions) loadSettings(logger *slog.Logger) *config.Settings {
	s, err := config.Load(g.configPath)
	if err == nil {
		logger.Debug("loaded settings", "path", s.Source, "bookmarks", len(s.Bookmarks))
		return s
	}

	path := g.configPath
	if path == "" {
		path, _ = config.DefaultPath()
	}
	logger.Debug("failed to load settings", "path", path, "error", err)
	return config.Unreadable(path, err)
}

func (g *globalOptions) printer(cmd *cobra.Command, format output.Format) *output.Printer {
	w := cmd.OutOrStdout()
	color := false
	if f, ok := w.(*os.File); ok {
		color = output.DetectColor(f, g.noColor)
	}
	return output.NewPrinter(w, format, color)
}

// operations wires the bookmark operations for one command invocation.
func (g *globalOptions) operations(cmd *cobra.Command, format output.Format) (*bookmarks.Operations, error) {
	logger := g.logger(cmd)
	logger.Debug("starting", "command", cmd.Name(), "version", version.GetInfo().String())

	dirs := g.dirs
	if dirs == nil {
		var err error
		dirs, err = mountdir.NewForUser()
		if err != nil {
			return nil, err
		}
	}
	runner := g.runner
	if runner == nil {
		runner = sshfs.NewExecRunner(logger)
	}

	return bookmarks.New(g.loadSettings(logger), dirs, runner, g.printer(cmd, format), bookmarks.WithLogger(logger)), nil
}

// ErrorHandler prints errors that have not been shown to the user yet.
// Operation failures carry an *bookmarks.ExitError and were already
// reported in color.
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *bookmarks.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// ExitCode returns the process status for an error returned by Execute.
func ExitCode(err error) int {
	return bookmarks.ExitCode(err)
}
