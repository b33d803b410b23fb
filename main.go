package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/sftp-mounts/internal/cmd"
	"github.com/dendrascience/sftp-mounts/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.GetVersion()),
		fang.WithErrorHandler(cmd.ErrorHandler),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
