package rpc

import (
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testBlockHash = "00000000000000000002a7c4c1e48d76c5a37902165a270156b7a8d72728a054"

func TestEncodeRequest(t *testing.T) {
	t.Parallel()

	body, err := encodeRequest("getblock", anylist{testBlockHash, 2})
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","method":"getblock","params":["`+testBlockHash+`",2]}`, string(body))

	fields := make(map[string]json.RawMessage)
	require.NoError(t, json.Unmarshal(body, &fields))
	_, hasID := fields["id"]
	require.False(t, hasID)

	body, err = encodeRequest("getblockcount", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","method":"getblockcount","params":[]}`, string(body))

	_, err = encodeRequest("bad", anylist{make(chan int)})
	require.Error(t, err)
}

func TestDecodeResult(t *testing.T) {
	t.Parallel()

	count, err := decodeResult[int64]([]byte(`{"result":800000,"error":null,"id":null}`))
	require.NoError(t, err)
	require.EqualValues(t, 800000, count)

	difficulty, err := decodeResult[float64]([]byte(`{"result":83148355189239.77}`))
	require.NoError(t, err)
	require.Equal(t, 83148355189239.77, difficulty)

	hash, err := decodeResult[chainhash.Hash]([]byte(`{"result":"` + testBlockHash + `"}`))
	require.NoError(t, err)
	require.Equal(t, testBlockHash, hash.String())

	info, err := decodeResult[IndexInfo]([]byte(`{"result":{"txindex":{"synced":true,"best_block_height":812345}}}`))
	require.NoError(t, err)
	require.Equal(t, &TxIndex{Synced: true, BestBlockHeight: 812345}, info.TxIndex)

	info, err = decodeResult[IndexInfo]([]byte(`{"result":{}}`))
	require.NoError(t, err)
	require.Nil(t, info.TxIndex)

	peers, err := decodeResult[[]PeerInfo]([]byte(`{"result":[{"id":7,"addr":"203.0.113.9:8333","network":"ipv4"}]}`))
	require.NoError(t, err)
	require.Equal(t, []PeerInfo{{ID: 7, Addr: "203.0.113.9:8333", Network: "ipv4"}}, peers)

	empty, err := decodeResult[[]chainhash.Hash]([]byte(`{"result":[]}`))
	require.NoError(t, err)
	require.Empty(t, empty)

	// the error member does not affect a present result, whatever its shape
	for _, raw := range []string{
		`{"result":5,"error":"oops"}`,
		`{"result":5,"error":{"code":"x","message":"m"}}`,
		`{"result":5,"error":{"code":-1,"message":"warning"}}`,
		`{"result":5,"error":[1,2]}`,
	} {
		res, err := decodeResult[int64]([]byte(raw))
		require.NoError(t, err, raw)
		require.EqualValues(t, 5, res, raw)
	}
}

func TestDecodeResult_BadResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"null result", `{"result":null}`},
		{"missing result", `{}`},
		{"only error", `{"error":{"code":-8,"message":"Block height out of range"}}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeResult[int64]([]byte(tt.raw))
			require.True(t, errors.Is(err, ErrBadResult))
		})
	}

	_, err := decodeResult[int64]([]byte(`{"result":null,"error":{"code":-8,"message":"Block height out of range"}}`))
	require.True(t, errors.Is(err, ErrBadResult))
	require.Contains(t, err.Error(), "Block height out of range")

	// an error member that is not a node error object leaves plain ErrBadResult
	for _, raw := range []string{
		`{"result":null,"error":"oops"}`,
		`{"result":null,"error":{"code":"x","message":"m"}}`,
		`{"result":null,"error":null}`,
		`{"result":null,"error":{}}`,
	} {
		_, err := decodeResult[int64]([]byte(raw))
		require.Equal(t, ErrBadResult, err, raw)
	}
}

func TestDecodeResult_DeserializeFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty body", ``},
		{"html", `<html>502 Bad Gateway</html>`},
		{"truncated", `{"result":{"chain":"main"`},
		{"wrong type", `{"result":"eight hundred thousand"}`},
		{"not an object", `[1,2,3]`},
		{"bad hash", `{"result":"zz"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var deserializeErr *DeserializeError
			if tt.name == "bad hash" {
				_, err := decodeResult[chainhash.Hash]([]byte(tt.raw))
				require.True(t, errors.As(err, &deserializeErr))
				return
			}
			_, err := decodeResult[int64]([]byte(tt.raw))
			require.True(t, errors.As(err, &deserializeErr), "got %v", err)
			require.NotEmpty(t, deserializeErr.Msg)
		})
	}
}

func TestDecodeResult_Transaction(t *testing.T) {
	t.Parallel()

	raw := `{"result":{
		"txid":"` + testTxID + `",
		"vin":[{"coinbase":"03a0bb0d"},{"txid":"` + testPrevTxID + `","vout":1}],
		"vout":[{"value":6.25,"n":0,"scriptPubKey":{"address":"bc1qexample"}},{"value":0,"n":1,"scriptPubKey":{}}]
	}}`
	tx, err := decodeResult[Transaction]([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, testTxID, tx.TxID.String())
	require.Len(t, tx.Vin, 2)
	require.True(t, tx.Vin[0].IsCoinbase())
	require.False(t, tx.Vin[1].IsCoinbase())
	require.Equal(t, testPrevTxID, tx.Vin[1].TxID.String())
	require.EqualValues(t, 1, *tx.Vin[1].Vout)
	require.Nil(t, tx.Vin[1].Prevout)
	require.Equal(t, "bc1qexample", *tx.Vout[0].ScriptPubKey.Address)
	require.Nil(t, tx.Vout[1].ScriptPubKey.Address)

	amount, err := tx.Vout[0].Amount()
	require.NoError(t, err)
	require.EqualValues(t, 625000000, amount)
}
