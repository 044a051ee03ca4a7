package rpc

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockchainInfo models the data returned by getblockchaininfo.
type BlockchainInfo struct {
	Chain                string         `json:"chain"`
	Blocks               int64          `json:"blocks"`
	Headers              int64          `json:"headers"`
	BestBlockHash        chainhash.Hash `json:"bestblockhash"`
	Difficulty           float64        `json:"difficulty"`
	MedianTime           int64          `json:"mediantime"`
	InitialBlockDownload bool           `json:"initialblockdownload"`
	SizeOnDisk           uint64         `json:"size_on_disk"`
	Pruned               bool           `json:"pruned"`
}

type NetworkInfo struct {
	Version       int64 `json:"version"`
	NetworkActive bool  `json:"networkactive"`
}

type MiningInfo struct {
	Blocks        int64   `json:"blocks"`
	Difficulty    float64 `json:"difficulty"`
	NetworkHashPS float64 `json:"networkhashps"`
	PooledTx      int64   `json:"pooledtx"`
	Chain         string  `json:"chain"`
}

type PeerInfo struct {
	ID      int32  `json:"id"`
	Addr    string `json:"addr"`
	Network string `json:"network"`
}

type TxIndex struct {
	Synced          bool  `json:"synced"`
	BestBlockHeight int64 `json:"best_block_height"`
}

// IndexInfo models getindexinfo. TxIndex is nil when the node runs without
// -txindex, in which case it answers with an empty object.
type IndexInfo struct {
	TxIndex *TxIndex `json:"txindex"`
}

// TxIn is a transaction input. TxID and Vout are absent for coinbase inputs.
// Prevout is never sent by the node; ResolvePrevouts fills it in.
type TxIn struct {
	TxID    *chainhash.Hash `json:"txid,omitempty"`
	Vout    *uint32         `json:"vout,omitempty"`
	Prevout *TxOut          `json:"prevout,omitempty"`
}

// IsCoinbase reports whether the input lacks an outpoint to resolve.
func (in *TxIn) IsCoinbase() bool {
	return in.TxID == nil || in.Vout == nil
}

type TxOutScript struct {
	Address *string `json:"address,omitempty"`
}

type TxOut struct {
	Value        float64     `json:"value"`
	N            *uint32     `json:"n,omitempty"`
	ScriptPubKey TxOutScript `json:"scriptPubKey"`
}

// Amount converts the BTC-denominated value to satoshis.
func (out *TxOut) Amount() (btcutil.Amount, error) {
	return btcutil.NewAmount(out.Value)
}

// Equal compares outputs by value rather than by pointer identity.
func (out *TxOut) Equal(other *TxOut) bool {
	if out == nil || other == nil {
		return out == other
	}
	return out.Value == other.Value &&
		equalPtr(out.N, other.N) &&
		equalPtr(out.ScriptPubKey.Address, other.ScriptPubKey.Address)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Transaction is the verbose form returned by getrawtransaction and embedded
// in verbosity-2 blocks. Input and output order is significant.
type Transaction struct {
	TxID chainhash.Hash `json:"txid"`
	Vin  []TxIn         `json:"vin"`
	Vout []TxOut        `json:"vout"`
}

type Block struct {
	Hash          chainhash.Hash `json:"hash"`
	Confirmations int64          `json:"confirmations"`
	Size          int64          `json:"size"`
	Height        int64          `json:"height"`
	Version       int32          `json:"version"`
	Tx            []Transaction  `json:"tx"`
}

type TxOutSetInfo struct {
	Height      int64          `json:"height"`
	BestBlock   chainhash.Hash `json:"bestblock"`
	TxOuts      int64          `json:"txouts"`
	TotalAmount float64        `json:"total_amount"`
}
