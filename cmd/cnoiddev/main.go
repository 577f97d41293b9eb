package main

import (
	"fmt"
	"os"

	listcmd "cnoiddev/cmd/cnoiddev/list"
	runcmd "cnoiddev/cmd/cnoiddev/run"
	"cnoiddev/cmd/cnoiddev/ui"
	"cnoiddev/internal/buildinfo"
	"cnoiddev/internal/logging"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	if err := logging.Configure(logging.LevelWarn); err != nil {
		_, _ = os.Stderr.WriteString("configure logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	ui.Configure()

	root := &cobra.Command{
		Use:           "cnoiddev",
		Short:         "Choreonoid + graspPlugin development containers",
		Version:       buildinfo.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logging.LevelWarn
			if verbose {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(runcmd.Cmd())
	root.AddCommand(listcmd.Cmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMsg("%v", err))
		os.Exit(1)
	}
}
