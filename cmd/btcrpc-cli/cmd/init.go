package cmd

import (
	"fmt"

	"btcrpc/cli"
	"btcrpc/config"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the CLI's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized btcrpc-cli in %s.\n", dir)
		fmt.Fprintf(cmd.OutOrStdout(), "Set your node credentials in %s.\n", config.ExpandConfigPath(dir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
