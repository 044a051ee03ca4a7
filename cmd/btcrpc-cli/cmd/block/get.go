package block

import (
	"fmt"
	"io"
	"strconv"

	"btcrpc/cli"
	"btcrpc/rpc"

	"github.com/btcsuite/btcd/wire"
	"github.com/spf13/cobra"
)

const (
	flagHex    = "hex"
	flagDecode = "decode"
)

var (
	asHex    bool
	decodeIt bool
)

var getCmd = &cobra.Command{
	Use:   "get <hash>",
	Short: "Fetches a block by hash.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := parseHash(args[0])
		if err != nil {
			return err
		}
		client, err := cli.DialRPC(cmd)
		if err != nil {
			return err
		}

		if decodeIt {
			block, err := client.GetRawBlockContext(cmd.Context(), hash)
			if err != nil {
				return err
			}
			return cli.Render(cmd, headerView(block), func(w io.Writer) {
				writeMsgBlock(w, block)
			})
		}

		if asHex {
			blockHex, err := client.GetBlockHexContext(cmd.Context(), hash)
			if err != nil {
				return err
			}
			return cli.Render(cmd, blockHex, func(w io.Writer) {
				fmt.Fprintln(w, blockHex)
			})
		}

		block, err := client.GetBlockContext(cmd.Context(), hash)
		if err != nil {
			return err
		}
		return cli.Render(cmd, block, func(w io.Writer) {
			writeBlock(w, block)
		})
	},
}

func writeBlock(w io.Writer, block *rpc.Block) {
	cli.WriteKVTable(w, []cli.KV{
		{Key: "Hash", Value: block.Hash.String()},
		{Key: "Height", Value: strconv.FormatInt(block.Height, 10)},
		{Key: "Confirmations", Value: strconv.FormatInt(block.Confirmations, 10)},
		{Key: "Size", Value: strconv.FormatInt(block.Size, 10)},
		{Key: "Version", Value: strconv.FormatInt(int64(block.Version), 10)},
		{Key: "Transactions", Value: strconv.Itoa(len(block.Tx))},
	})
	if len(block.Tx) == 0 {
		return
	}
	fmt.Fprintln(w)
	rows := make([][]string, 0, len(block.Tx))
	for i, tx := range block.Tx {
		rows = append(rows, []string{
			strconv.Itoa(i),
			tx.TxID.String(),
			strconv.Itoa(len(tx.Vin)),
			strconv.Itoa(len(tx.Vout)),
		})
	}
	cli.WriteTable(w, []string{"#", "TxID", "Inputs", "Outputs"}, rows)
}

type msgBlockHeader struct {
	Hash         string `json:"hash"`
	Version      int32  `json:"version"`
	PrevBlock    string `json:"previousblockhash"`
	MerkleRoot   string `json:"merkleroot"`
	Timestamp    int64  `json:"time"`
	Bits         string `json:"bits"`
	Nonce        uint32 `json:"nonce"`
	Transactions int    `json:"ntx"`
}

func headerView(block *wire.MsgBlock) *msgBlockHeader {
	hdr := block.Header
	return &msgBlockHeader{
		Hash:         hdr.BlockHash().String(),
		Version:      hdr.Version,
		PrevBlock:    hdr.PrevBlock.String(),
		MerkleRoot:   hdr.MerkleRoot.String(),
		Timestamp:    hdr.Timestamp.Unix(),
		Bits:         strconv.FormatUint(uint64(hdr.Bits), 16),
		Nonce:        hdr.Nonce,
		Transactions: len(block.Transactions),
	}
}

func writeMsgBlock(w io.Writer, block *wire.MsgBlock) {
	view := headerView(block)
	cli.WriteKVTable(w, []cli.KV{
		{Key: "Hash", Value: view.Hash},
		{Key: "Version", Value: strconv.FormatInt(int64(view.Version), 10)},
		{Key: "Previous Block", Value: view.PrevBlock},
		{Key: "Merkle Root", Value: view.MerkleRoot},
		{Key: "Time", Value: block.Header.Timestamp.UTC().String()},
		{Key: "Bits", Value: view.Bits},
		{Key: "Nonce", Value: strconv.FormatUint(uint64(view.Nonce), 10)},
		{Key: "Transactions", Value: strconv.Itoa(view.Transactions)},
	})
}

func init() {
	getCmd.Flags().BoolVar(&asHex, flagHex, false, "Print the serialized block as hex")
	getCmd.Flags().BoolVar(&decodeIt, flagDecode, false, "Fetch the serialized block and decode its header locally")
	getCmd.MarkFlagsMutuallyExclusive(flagHex, flagDecode)
	cmd.AddCommand(getCmd)
}
