package chain

import (
	"io"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Returns the status of the node's transaction index.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		res, err := client.GetIndexInfoContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, res, func(w io.Writer) {
			if res.TxIndex == nil {
				cli.WriteKVTable(w, []cli.KV{{Key: "Tx Index", Value: "DISABLED"}})
				return
			}
			cli.WriteKVTable(w, []cli.KV{
				{Key: "Tx Index Synced", Value: boolToStr(res.TxIndex.Synced)},
				{Key: "Best Indexed Height", Value: itoa(res.TxIndex.BestBlockHeight)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(indexCmd)
}
