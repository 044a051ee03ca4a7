package tx

import (
	"fmt"
	"io"
	"strconv"

	"btcrpc/cli"
	"btcrpc/rpc"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagPrevouts = "prevouts"

var withPrevouts bool

var getCmd = &cobra.Command{
	Use:   "get <txid>",
	Short: "Fetches a transaction by id. Requires -txindex for confirmed transactions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		txid, err := chainhash.NewHashFromStr(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid transaction id")
		}
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}

		var tx *rpc.Transaction
		if withPrevouts {
			tx, err = client.GetRawTransactionWithPrevoutsContext(cmd.Context(), txid)
		} else {
			tx, err = client.GetRawTransactionContext(cmd.Context(), txid)
		}
		if err != nil {
			return err
		}

		return cli.Render(cmd, tx, func(w io.Writer) {
			writeTx(w, tx)
		})
	},
}

func writeTx(w io.Writer, tx *rpc.Transaction) {
	fmt.Fprintf(w, "TxID: %s\n\n", tx.TxID)

	inRows := make([][]string, 0, len(tx.Vin))
	for i, in := range tx.Vin {
		if in.IsCoinbase() {
			inRows = append(inRows, []string{strconv.Itoa(i), "coinbase", "", "", ""})
			continue
		}
		addr, value := "", ""
		if in.Prevout != nil {
			addr = address(in.Prevout)
			value = amount(in.Prevout)
		}
		inRows = append(inRows, []string{
			strconv.Itoa(i),
			in.TxID.String(),
			strconv.FormatUint(uint64(*in.Vout), 10),
			addr,
			value,
		})
	}
	cli.WriteTable(w, []string{"#", "Prev TxID", "Vout", "Address", "Value"}, inRows)
	fmt.Fprintln(w)

	outRows := make([][]string, 0, len(tx.Vout))
	for i := range tx.Vout {
		out := &tx.Vout[i]
		n := ""
		if out.N != nil {
			n = strconv.FormatUint(uint64(*out.N), 10)
		}
		outRows = append(outRows, []string{n, address(out), amount(out)})
	}
	cli.WriteTable(w, []string{"N", "Address", "Value"}, outRows)
}

func address(out *rpc.TxOut) string {
	if out.ScriptPubKey.Address == nil {
		return ""
	}
	return *out.ScriptPubKey.Address
}

func amount(out *rpc.TxOut) string {
	amt, err := out.Amount()
	if err != nil {
		return "invalid"
	}
	return amt.String()
}

func init() {
	getCmd.Flags().BoolVar(&withPrevouts, flagPrevouts, false, "Resolve the output spent by each input")
	cmd.AddCommand(getCmd)
}
