package rpc

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

func genesisHex(t *testing.T) string {
	var buf bytes.Buffer
	require.NoError(t, chaincfg.MainNetParams.GenesisBlock.Serialize(&buf))
	return hex.EncodeToString(buf.Bytes())
}

func TestDecodeBlockHex(t *testing.T) {
	block, err := DecodeBlockHex(genesisHex(t))
	require.NoError(t, err)
	require.Equal(t, *chaincfg.MainNetParams.GenesisHash, block.BlockHash())
	require.Len(t, block.Transactions, 1)

	_, err = DecodeBlockHex("not hex")
	require.Error(t, err)

	_, err = DecodeBlockHex("0100")
	require.Error(t, err)
}

func TestClient_GetRawBlock(t *testing.T) {
	c, node := newStubClient(t)
	node.HandleResult("getblock", `"`+genesisHex(t)+`"`)

	block, err := c.GetRawBlock(chaincfg.MainNetParams.GenesisHash)
	require.NoError(t, err)
	require.Equal(t, *chaincfg.MainNetParams.GenesisHash, block.BlockHash())
	require.JSONEq(t, `0`, string(node.Calls()[0].Params[1]))
}
