package tx

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "tx",
	Short: "Commands related to transactions and the mempool.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
