package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dendrascience/sftp-mounts/config"
	"github.com/dendrascience/sftp-mounts/sshfs"
)

// MountOptions controls Mount.
type MountOptions struct {
	// DryRun prints the command line instead of running it.
	DryRun bool
	// ShowPassword prints the escaped password in dry-run output.
	ShowPassword bool
	// Timeout bounds the sshfs call; zero waits indefinitely.
	Timeout time.Duration
}

// UnmountOptions controls Unmount.
type UnmountOptions struct {
	Timeout time.Duration
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Mount attaches the named bookmark at its mount directory.
//
// When sshfs fails and the mount directory was already there before this
// call, the bookmark is reported as already mounted and the call succeeds,
// so repeated mounts are idempotent. A failure right after creating the
// directory is a real error.
func (o *Operations) Mount(ctx context.Context, name string, opts MountOptions) error {
	if _, err := o.validate(); err != nil {
		return err
	}
	b, err := o.lookup(name)
	if err != nil {
		return err
	}

	if opts.DryRun {
		inv := sshfs.BuildMount(b, o.dirs.Path(b.Name), o.settings.SSHFS)
		if opts.ShowPassword {
			o.out.Println(inv.String())
		} else {
			o.out.Println(inv.Redacted())
		}
		return nil
	}

	dir, created, err := o.dirs.Ensure(b.Name)
	if err != nil {
		o.out.Error(err.Error())
		return fail(err)
	}
	if created {
		o.logger.Debug("created mount directory", "bookmark", b.Name, "dir", dir)
	}

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	res, err := o.runner.Run(ctx, sshfs.BuildMount(b, dir, o.settings.SSHFS))
	if err == nil {
		o.out.Success(b.Name + " has been successfully mounted!")
		return nil
	}
	o.logger.Debug("mount command failed", "bookmark", b.Name, "error", err)

	if !created && ctx.Err() == nil {
		o.out.Error(b.Name + " seems to already be mounted!")
		return nil
	}

	o.out.Error(fmt.Sprintf("Error! %s could not be mounted!", b.Name))
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		o.out.Error(fmt.Sprintf("sshfs did not finish within %s", opts.Timeout))
	case res.Stderr != "":
		o.out.Error(res.Stderr)
	}
	return fail(fmt.Errorf("%w: %s: %w", ErrMountFailed, b.Name, err))
}

// Unmount detaches the named bookmark. The mount directory is left in place.
func (o *Operations) Unmount(ctx context.Context, name string, opts UnmountOptions) error {
	if _, err := o.validate(); err != nil {
		return err
	}
	b, err := o.lookup(name)
	if err != nil {
		return err
	}

	if !o.dirs.Exists(b.Name) {
		o.out.Error(b.Name + " does not seem to be mounted!")
		return fail(fmt.Errorf("%w: %s", ErrNotMounted, b.Name))
	}
	dir := o.dirs.Path(b.Name)

	ctx, cancel := withTimeout(ctx, opts.Timeout)
	defer cancel()

	if err := o.detach(ctx, dir); err != nil {
		o.logger.Debug("unmount failed", "bookmark", b.Name, "error", err)
		o.out.Error("Error! " + b.Name + " could not be unmounted!")
		return fail(fmt.Errorf("%w: %s: %w", ErrUnmountFailed, b.Name, err))
	}
	o.out.Notice(b.Name + " has been successfully unmounted!")
	return nil
}

func (o *Operations) detach(ctx context.Context, dir string) error {
	if o.settings.Unmount.Method == config.UnmountWithFuse {
		o.logger.Debug("detaching through fuse", "dir", dir)
		return o.fuseUnmount(dir)
	}
	_, err := o.runner.Run(ctx, sshfs.BuildUnmount(dir, o.settings.Unmount))
	return err
}
