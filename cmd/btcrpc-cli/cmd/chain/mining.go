package chain

import (
	"io"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var miningCmd = &cobra.Command{
	Use:   "mining",
	Short: "Returns mining-related information.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		res, err := client.GetMiningInfoContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, res, func(w io.Writer) {
			cli.WriteKVTable(w, []cli.KV{
				{Key: "Chain", Value: res.Chain},
				{Key: "Blocks", Value: itoa(res.Blocks)},
				{Key: "Difficulty", Value: ftoa(res.Difficulty)},
				{Key: "Network Hash/s", Value: ftoa(res.NetworkHashPS)},
				{Key: "Pooled Tx", Value: itoa(res.PooledTx)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(miningCmd)
}
