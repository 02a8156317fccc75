package main

import (
	"os"

	"github.com/lvzhenbang/flex-layout/cli"
	"github.com/lvzhenbang/flex-layout/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand("flexlayout", "Responsive breakpoint and print interception toolkit")
	rootCmd.Long = `flexlayout manages responsive breakpoint registries and simulates how
media change events flow through print interception. During a print
event the configured breakpoints are forced active in priority order;
when printing ends the pre-print activations are restored.`
	rootCmd.Example = `  flexlayout breakpoints
  flexlayout simulate scenario.yml
  flexlayout validate ./flexlayout.yml`

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(cmd.NewBreakpointsCmd())
	rootCmd.AddCommand(cmd.NewSimulateCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
