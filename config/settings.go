package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SFTP_MOUNTS"

	// EnvConfig names the environment variable holding the settings path.
	EnvConfig = EnvPrefix + "_CONFIG"

	appDir       = "sftp-mounts"
	settingsName = "settings.json"
)

// Unmount methods.
const (
	UnmountWithUtility = "umount"
	UnmountWithFuse    = "fuse"
)

// Bookmark is a named remote connection profile.
type Bookmark struct {
	// Name doubles as the mount directory name, so it must be a single path segment.
	Name string `mapstructure:"name" json:"name" yaml:"name" validate:"required,pathsegment"`
	Host string `mapstructure:"host" json:"host" yaml:"host" validate:"required"`
	Port int    `mapstructure:"port" json:"port" yaml:"port" validate:"required,min=1,max=65535"`
	User string `mapstructure:"user" json:"user" yaml:"user" validate:"required"`
	Path string `mapstructure:"path" json:"path" yaml:"path" validate:"required"`

	// Key is the identity file path. When both Key and Pass are set, Key wins.
	Key string `mapstructure:"key" json:"key,omitempty" yaml:"key,omitempty" validate:"required_without=Pass"`
	// Pass is never rendered back to the user.
	Pass string `mapstructure:"pass" json:"-" yaml:"-"`
}

// UsesKey reports whether the bookmark authenticates with an identity file.
func (b Bookmark) UsesKey() bool {
	return b.Key != ""
}

// Remote returns the user@host:path target.
func (b Bookmark) Remote() string {
	return fmt.Sprintf("%s@%s:%s", b.User, b.Host, b.Path)
}

// SSHFSOptions configures the mount utility.
type SSHFSOptions struct {
	Binary string `json:"binary" yaml:"binary"`
	// ConnectTimeout in seconds, applied to password-authenticated mounts.
	ConnectTimeout int      `json:"connect_timeout" yaml:"connect_timeout"`
	ExtraOptions   []string `json:"extra_options,omitempty" yaml:"extra_options,omitempty"`
}

// UnmountOptions configures how mounts are detached.
type UnmountOptions struct {
	Method string `json:"method" yaml:"method"`
	Binary string `json:"binary" yaml:"binary"`
}

// Settings is the loaded settings document. It is read-only once loaded.
type Settings struct {
	// Source is the file the settings came from.
	Source string
	// Err is set when the document could not be read at all.
	Err error

	// HasBookmarks is false when the document has no bookmarks key.
	HasBookmarks bool
	Bookmarks    []Bookmark

	SSHFS   SSHFSOptions
	Unmount UnmountOptions
}

// Find returns the first bookmark whose name matches exactly.
func (s *Settings) Find(name string) (Bookmark, bool) {
	for _, b := range s.Bookmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Bookmark{}, false
}

// Unreadable wraps a load failure so it can still be reported by Validate.
func Unreadable(path string, err error) *Settings {
	s := &Settings{Source: path, Err: err}
	applyToolDefaults(s)
	return s
}

// DefaultPath returns $XDG_CONFIG_HOME/sftp-mounts/settings.json, or the
// value of SFTP_MOUNTS_CONFIG when set.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appDir, settingsName), nil
}

// Load reads the settings document at path. An empty path means DefaultPath.
func Load(path string) (*Settings, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	setupViper(v, path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSettings, path)
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s := &Settings{Source: path}
	if v.IsSet("bookmarks") {
		s.HasBookmarks = true
		if err := v.UnmarshalKey("bookmarks", &s.Bookmarks); err != nil {
			return nil, fmt.Errorf("failed to decode bookmarks in %s: %w", path, err)
		}
	}

	s.SSHFS = SSHFSOptions{
		Binary:         v.GetString("sshfs.binary"),
		ConnectTimeout: v.GetInt("sshfs.connect_timeout"),
		ExtraOptions:   v.GetStringSlice("sshfs.extra_options"),
	}
	s.Unmount = UnmountOptions{
		Method: strings.ToLower(v.GetString("unmount.method")),
		Binary: v.GetString("unmount.binary"),
	}
	applyToolDefaults(s)

	switch s.Unmount.Method {
	case UnmountWithUtility, UnmountWithFuse:
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownUnmountMethod,
			s.Unmount.Method, UnmountWithUtility, UnmountWithFuse)
	}

	if home, err := os.UserHomeDir(); err == nil {
		for i := range s.Bookmarks {
			s.Bookmarks[i].Key = ExpandHome(s.Bookmarks[i].Key, home)
		}
	}

	return s, nil
}

// ExpandHome replaces a leading "~/" with home. No shell sits between the
// settings and sshfs, so nothing else would expand it.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func setupViper(v *viper.Viper, path string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("sshfs.binary", "sshfs")
	v.SetDefault("sshfs.connect_timeout", 8)
	v.SetDefault("sshfs.extra_options", []string{})
	v.SetDefault("unmount.method", UnmountWithUtility)
	v.SetDefault("unmount.binary", "umount")

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}
}

func applyToolDefaults(s *Settings) {
	if s.SSHFS.Binary == "" {
		s.SSHFS.Binary = "sshfs"
	}
	if s.SSHFS.ConnectTimeout <= 0 {
		s.SSHFS.ConnectTimeout = 8
	}
	if s.Unmount.Method == "" {
		s.Unmount.Method = UnmountWithUtility
	}
	if s.Unmount.Binary == "" {
		s.Unmount.Binary = "umount"
	}
}
