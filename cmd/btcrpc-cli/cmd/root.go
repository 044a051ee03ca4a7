package cmd

import (
	"fmt"
	"os"

	"btcrpc/cli"
	"btcrpc/cmd/btcrpc-cli/cmd/block"
	"btcrpc/cmd/btcrpc-cli/cmd/chain"
	"btcrpc/cmd/btcrpc-cli/cmd/tx"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "btcrpc-cli",
	Short:         "Command-line JSON-RPC client for a Bitcoin full node.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.btcrpc-cli", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagURL, "", "Node JSON-RPC URL. Overrides the config file.")
	rootCmd.PersistentFlags().String(cli.FlagUser, "", "Node RPC username. Overrides the config file.")
	rootCmd.PersistentFlags().String(cli.FlagPassword, "", "Node RPC password. Overrides the config file.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, cli.FormatAuto, "Output format: auto, text or json.")
	chain.AddCmd(rootCmd)
	block.AddCmd(rootCmd)
	tx.AddCmd(rootCmd)
}
