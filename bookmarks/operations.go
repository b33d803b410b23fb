package bookmarks

import (
	"fmt"
	"log/slog"
	"strings"

	"bazil.org/fuse"
	"github.com/dendrascience/sftp-mounts/config"
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/dendrascience/sftp-mounts/mountdir"
	"github.com/dendrascience/sftp-mounts/sshfs"
)

// Operations runs bookmark commands against one loaded settings document.
type Operations struct {
	settings *config.Settings
	dirs     *mountdir.Manager
	runner   sshfs.Runner
	out      *output.Printer
	logger   *slog.Logger

	// fuseUnmount detaches a FUSE mount when unmount.method is fuse.
	fuseUnmount func(dir string) error
}

// Option customizes Operations.
type Option func(*Operations)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Operations) {
		o.logger = logger
	}
}

// WithFuseUnmount replaces the FUSE detach function.
func WithFuseUnmount(fn func(dir string) error) Option {
	return func(o *Operations) {
		o.fuseUnmount = fn
	}
}

// New returns Operations over settings. The settings are never modified.
func New(settings *config.Settings, dirs *mountdir.Manager, runner sshfs.Runner, out *output.Printer, opts ...Option) *Operations {
	o := &Operations{
		settings:    settings,
		dirs:        dirs,
		runner:      runner,
		out:         out,
		logger:      slog.Default(),
		fuseUnmount: fuse.Unmount,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validate prints the report and returns an ExitError when the settings
// are incomplete.
func (o *Operations) validate() (config.Report, error) {
	r := config.Validate(o.settings)
	if !r.HasError {
		return r, nil
	}

	o.out.Error("You have error in your settings.json file!")
	o.out.Error("------------------------------------------")
	if r.Problem != "" {
		o.out.Error(r.Problem)
	}
	o.out.Error("Review the following items:")
	for _, e := range r.Invalid() {
		o.out.Error(fmt.Sprintf(" - Item: %d is missing: [%s]", e.Index, strings.Join(e.Missing, ", ")))
	}
	return r, fail(r.Err())
}

func (o *Operations) lookup(name string) (config.Bookmark, error) {
	b, ok := o.settings.Find(name)
	if !ok {
		o.out.Error("That bookmark could not be found!")
		o.out.Error("Use the `list` command to view all available bookmarks.")
		return config.Bookmark{}, fail(fmt.Errorf("%w: %q", ErrNotFound, name))
	}
	return b, nil
}

// Check validates the settings and summarizes them.
func (o *Operations) Check() error {
	r, err := o.validate()
	if err != nil {
		return err
	}
	for _, name := range r.Duplicates {
		o.out.Notice(fmt.Sprintf("Warning: bookmark %q is defined more than once; the first definition is used.", name))
	}
	o.out.Success(fmt.Sprintf("%s is valid: %d bookmark(s).", o.settings.Source, len(o.settings.Bookmarks)))
	return nil
}
