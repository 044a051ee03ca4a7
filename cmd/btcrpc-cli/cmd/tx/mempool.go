package tx

import (
	"fmt"
	"io"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "Lists the ids of all transactions in the mempool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		txids, err := client.GetRawMempoolContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, txids, func(w io.Writer) {
			for _, txid := range txids {
				fmt.Fprintln(w, txid.String())
			}
			fmt.Fprintf(w, "Total: %d\n", len(txids))
		})
	},
}

func init() {
	cmd.AddCommand(mempoolCmd)
}
