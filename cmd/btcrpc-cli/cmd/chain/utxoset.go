package chain

import (
	"io"

	"btcrpc/cli"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/cobra"
)

var utxoSetCmd = &cobra.Command{
	Use:   "utxo-set",
	Short: "Returns statistics about the UTXO set. Can take many minutes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		res, err := client.GetTxOutSetInfoContext(cmd.Context())
		if err != nil {
			return err
		}
		total, err := btcutil.NewAmount(res.TotalAmount)
		if err != nil {
			return err
		}

		return cli.Render(cmd, res, func(w io.Writer) {
			cli.WriteKVTable(w, []cli.KV{
				{Key: "Height", Value: itoa(res.Height)},
				{Key: "Best Block", Value: res.BestBlock.String()},
				{Key: "Tx Outs", Value: itoa(res.TxOuts)},
				{Key: "Total Amount", Value: total.String()},
			})
		})
	},
}

func init() {
	cmd.AddCommand(utxoSetCmd)
}
