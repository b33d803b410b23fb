package config

import "errors"

// Sentinel errors for package config.
var (
	// ErrNoSettings is returned when the settings file does not exist.
	ErrNoSettings = errors.New("settings file not found")

	// ErrInvalidSettings is returned by Report.Err when validation failed.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrUnknownUnmountMethod is returned for an unmount.method other than umount or fuse.
	ErrUnknownUnmountMethod = errors.New("unknown unmount method")
)
