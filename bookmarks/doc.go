// Package bookmarks implements the list, mount, unmount and check operations.
//
// Every operation validates the settings first and stops with a printed
// report when they are incomplete. Mount and unmount then resolve the
// bookmark by exact name (first match wins), manage its mount directory and
// run exactly one external process. Results are printed for the user and
// returned as an *ExitError carrying the process exit code; a nil error
// means exit status 0.
package bookmarks
