package bookmarks

import (
	"errors"
	"fmt"
)

// Sentinel errors for package bookmarks.
var (
	ErrNotFound      = errors.New("bookmark not found")
	ErrNotMounted    = errors.New("bookmark not mounted")
	ErrMountFailed   = errors.New("mount failed")
	ErrUnmountFailed = errors.New("unmount failed")
)

// ExitFailure is the status for every failed operation; it is what exit(-1)
// reports on POSIX systems.
const ExitFailure = 255

// ExitError carries the exit status for an error whose message has already
// been shown to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func fail(err error) error {
	return &ExitError{Code: ExitFailure, Err: err}
}

// ExitCode maps an operation error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
