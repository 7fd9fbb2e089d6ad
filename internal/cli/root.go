package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "trainplan",
	Short:         "Turn a training plan into a dated countdown to race day",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log debug output to stderr")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.trainplan/config.yaml)")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("error: "+err.Error()))
	}
	return err
}
