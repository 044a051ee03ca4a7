package chain

import (
	"fmt"
	"io"
	"strconv"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Returns the node's connected peers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		peers, err := client.GetPeerInfoContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, peers, func(w io.Writer) {
			rows := make([][]string, 0, len(peers))
			for _, peer := range peers {
				rows = append(rows, []string{
					strconv.Itoa(int(peer.ID)),
					peer.Addr,
					peer.Network,
				})
			}
			cli.WriteTable(w, []string{"ID", "Address", "Network"}, rows)
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Total: %d\n", len(peers))
		})
	},
}

func init() {
	cmd.AddCommand(peersCmd)
}
