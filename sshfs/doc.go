// Package sshfs builds and runs the external mount and unmount invocations.
//
// Invocations are argument vectors, never shell strings: the password for
// password-authenticated bookmarks reaches sshfs through its stdin pipe with
// the password_stdin option. String and Redacted render a shell-equivalent
// command line for display only.
package sshfs
