package cmd

import (
	"github.com/dendrascience/sftp-mounts/bookmarks"
	"github.com/dendrascience/sftp-mounts/internal/output"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the list subcommand.
func NewListCmd(g *globalOptions) *cobra.Command {
	var (
		status bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available bookmarks",
		Long: `List every bookmark in the settings file, in the order it is defined.

With --status each bookmark's mount directory is inspected and reported as
mounted, stale (directory left behind with nothing attached) or unmounted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			ops, err := g.operations(cmd, f)
			if err != nil {
				return err
			}
			_, err = ops.List(bookmarks.ListOptions{Status: status})
			return err
		},
	}

	cmd.Flags().BoolVarP(&status, "status", "s", false, "Show the mount state of each bookmark")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json or yaml")

	return cmd
}
