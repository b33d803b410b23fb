package cmd

import (
	"github.com/dendrascience/sftp-mounts/bookmarks"
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/spf13/cobra"
)

// NewUnmountCmd creates and returns the unmount subcommand.
func NewUnmountCmd(g *globalOptions) *cobra.Command {
	var opts bookmarks.UnmountOptions

	cmd := &cobra.Command{
		Use:   "unmount <bookmark_nickname>",
		Short: "Unmount specified bookmark",
		Long: `Unmount a bookmark mounted at ~/.sftp-mounts/<bookmark_nickname>.

The bookmark counts as mounted while its mount directory exists. The
directory itself is left in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := g.operations(cmd, output.FormatTable)
			if err != nil {
				return err
			}
			return ops.Unmount(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.Timeout, "timeout", "t", 0, "Give up when the unmount has not finished after this long (0 waits forever)")

	return cmd
}
