package chain

import (
	"io"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Returns the node's P2P network state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		res, err := client.GetNetworkInfoContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, res, func(w io.Writer) {
			cli.WriteKVTable(w, []cli.KV{
				{Key: "Version", Value: itoa(res.Version)},
				{Key: "Network Active", Value: boolToStr(res.NetworkActive)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(networkCmd)
}
