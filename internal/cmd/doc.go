// Package cmd provides the command-line interface implementation for sftp-mounts.
//
// This package contains the subcommand implementations for the sftp-mounts CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and global flags
//   - list: Bookmark listing as a table, JSON or YAML
//   - mount: sshfs mounting of one bookmark
//   - unmount: Detaching one bookmark
//   - check: Settings validation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands only parse flags; the
// work is done by the bookmarks package.
package cmd
