package cmd

import (
	"time"

	"github.com/dendrascience/sftp-mounts/bookmarks"
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/spf13/cobra"
)

// NewMountCmd creates and returns the mount subcommand.
// It mounts one bookmark at ~/.sftp-mounts/<bookmark_nickname>.
func NewMountCmd(g *globalOptions) *cobra.Command {
	var opts bookmarks.MountOptions

	cmd := &cobra.Command{
		Use:   "mount <bookmark_nickname>",
		Short: "Mount specified bookmark",
		Long: `Mount a bookmark with sshfs at ~/.sftp-mounts/<bookmark_nickname>.

The mount directory is created when missing and kept after unmounting.
Mounting a bookmark whose directory already exists and that sshfs refuses
to mount again is reported as already mounted and is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := g.operations(cmd, output.FormatTable)
			if err != nil {
				return err
			}
			return ops.Mount(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the sshfs command instead of running it")
	cmd.Flags().BoolVar(&opts.ShowPassword, "show-password", false, "Include the escaped password in --dry-run output")
	cmd.Flags().DurationVarP(&opts.Timeout, "timeout", "t", time.Duration(0), "Give up when sshfs has not finished after this long (0 waits forever)")

	return cmd
}
