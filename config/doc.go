// Package config loads and validates the sftp-mounts settings document.
//
// The document holds the bookmark list plus optional tool settings for the
// sshfs and unmount utilities. It is read once per process through viper,
// so JSON, YAML and TOML files are all accepted, and the tool settings can be
// overridden with SFTP_MOUNTS_* environment variables.
//
// Validate checks every bookmark against the required-field rules and
// produces a Report. Callers treat a failing report as fatal: nothing else
// happens until the settings are fixed.
package config
