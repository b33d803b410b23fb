// Package main provides the sftp-mounts command-line interface.
//
// sftp-mounts keeps named SSH bookmarks in a settings file and mounts them
// with sshfs under ~/.sftp-mounts/<name>. The binary supports these
// subcommands:
//   - list: List available bookmarks
//   - mount: Mount a bookmark
//   - unmount: Unmount a bookmark
//   - check: Validate the settings file
package main
