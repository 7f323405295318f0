// Command billsplit splits a bill and its tip between people. It runs the
// RPC server, one-off calculations, and a line-driven bill form.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bauermateus/Bill-Splitter-App/pkg/logging"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "billsplit",
		Short:        "Split a bill and tip between people",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup()
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	cmd.AddCommand(
		newServeCmd(opts),
		newCalcCmd(),
		newFormCmd(opts),
		newTokenCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
