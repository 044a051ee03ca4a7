package chain

import (
	"fmt"
	"io"

	"btcrpc/cli"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Returns the height of the best chain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		count, err := client.GetBlockCountContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, count, func(w io.Writer) {
			fmt.Fprintln(w, count)
		})
	},
}

var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Returns the proof-of-work difficulty of the best block.",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}
		difficulty, err := client.GetDifficultyContext(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Render(cmd, difficulty, func(w io.Writer) {
			fmt.Fprintln(w, ftoa(difficulty))
		})
	},
}

func init() {
	cmd.AddCommand(countCmd)
	cmd.AddCommand(difficultyCmd)
}
