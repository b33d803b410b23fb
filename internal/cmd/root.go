package cmd

import (
	"github.com/dendrascience/sftp-mounts/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the sftp-mounts CLI.
// It sets up the global flags, command groups and all subcommands.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(g *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sftp-mounts",
		Short: "sftp-mounts - mount named SSH bookmarks with sshfs",
		Long: `sftp-mounts manages named remote filesystem bookmarks.

Bookmarks are read from a settings file (by default
$XDG_CONFIG_HOME/sftp-mounts/settings.json) and mounted with sshfs under
~/.sftp-mounts/<name>.

Use subcommands to perform different operations:
  - list: List available bookmarks
  - mount: Mount a bookmark
  - unmount: Unmount a bookmark
  - check: Validate the settings file`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to the settings file (default $XDG_CONFIG_HOME/sftp-mounts/settings.json, or $"+configEnv+")")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	groupBookmarks := "bookmarks"
	groupSettings := "settings"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupBookmarks,
		Title: "Bookmark Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSettings,
		Title: "Settings",
	})

	listCmd := NewListCmd(g)
	mountCmd := NewMountCmd(g)
	unmountCmd := NewUnmountCmd(g)
	checkCmd := NewCheckCmd(g)

	listCmd.GroupID = groupBookmarks
	mountCmd.GroupID = groupBookmarks
	unmountCmd.GroupID = groupBookmarks
	checkCmd.GroupID = groupSettings

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(unmountCmd)
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}
