package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "moodchart",
		Short:         "Chart a mood journal",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String(configFlag, "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(plotCmd())
	cmd.AddCommand(statsCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, Error("error: "+err.Error()))
	}
	return err
}
