package block

import (
	"fmt"
	"io"
	"strconv"

	"btcrpc/cli"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <height>",
	Short: "Returns the hash of the best-chain block at a height.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid height")
		}
		if height < 0 {
			return errors.New("height must not be negative")
		}
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		hash, err := client.GetBlockHashContext(cmd.Context(), height)
		if err != nil {
			return err
		}

		return cli.Render(cmd, hash, func(w io.Writer) {
			fmt.Fprintln(w, hash.String())
		})
	},
}

func init() {
	cmd.AddCommand(hashCmd)
}
