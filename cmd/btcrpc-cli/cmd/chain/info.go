package chain

import (
	"io"
	"strconv"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Returns the node's view of the blockchain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		res, err := client.GetBlockchainInfoContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, res, func(w io.Writer) {
			cli.WriteKVTable(w, []cli.KV{
				{Key: "Chain", Value: res.Chain},
				{Key: "Blocks", Value: itoa(res.Blocks)},
				{Key: "Headers", Value: itoa(res.Headers)},
				{Key: "Best Block Hash", Value: res.BestBlockHash.String()},
				{Key: "Difficulty", Value: ftoa(res.Difficulty)},
				{Key: "Median Time", Value: itoa(res.MedianTime)},
				{Key: "Initial Block Download", Value: boolToStr(res.InitialBlockDownload)},
				{Key: "Size On Disk", Value: strconv.FormatUint(res.SizeOnDisk, 10)},
				{Key: "Pruned", Value: boolToStr(res.Pruned)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(infoCmd)
}
