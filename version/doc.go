// Package version reports the sftp-mounts version.
//
// The default version is the fixed release string printed by --version.
// Release builds may override it, along with the commit and build date:
//
//	-ldflags "-X github.com/dendrascience/sftp-mounts/version.Version=1.0.1 -X github.com/dendrascience/sftp-mounts/version.Commit=abc1234"
//
// When no commit is injected, the VCS revision recorded by the Go toolchain is used.
package version
