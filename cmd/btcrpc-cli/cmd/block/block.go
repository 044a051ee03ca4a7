package block

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "block",
	Short: "Commands related to blocks.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

func parseHash(s string) (*chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid block hash")
	}
	return hash, nil
}
