package cmd

import (
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates and returns the check subcommand.
// It validates the settings file without touching any mount.
func NewCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the settings file",
		Long: `Validate the settings file and report incomplete bookmarks.

Every bookmark needs a name, host, port, user and path, plus a key or a
password. Bookmark names used more than once are reported as a warning;
mount and unmount always use the first one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := g.operations(cmd, output.FormatTable)
			if err != nil {
				return err
			}
			return ops.Check()
		},
	}
}
