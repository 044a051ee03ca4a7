package rpc

import (
	"bytes"
	"context"
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
)

// DecodeBlockHex deserializes a block in the hex form returned by getblock
// with verbosity 0.
func DecodeBlockHex(blockHex string) (*wire.MsgBlock, error) {
	b, err := hex.DecodeString(blockHex)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding block hex")
	}
	block := new(wire.MsgBlock)
	if err := block.Deserialize(bytes.NewReader(b)); err != nil {
		return nil, errors.Wrap(err, "error deserializing block")
	}
	return block, nil
}

// GetRawBlock fetches a block in serialized form and deserializes it.
func (c *Client) GetRawBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error) {
	return c.GetRawBlockContext(context.Background(), blockHash)
}

func (c *Client) GetRawBlockContext(ctx context.Context, blockHash *chainhash.Hash) (*wire.MsgBlock, error) {
	blockHex, err := c.GetBlockHexContext(ctx, blockHash)
	if err != nil {
		return nil, err
	}
	return DecodeBlockHex(blockHex)
}
