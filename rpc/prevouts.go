package rpc

import (
	"context"

	"btcrpc/log"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TxLookup fetches a verbose transaction by id. *Client satisfies it.
type TxLookup interface {
	GetRawTransactionContext(ctx context.Context, txid *chainhash.Hash) (*Transaction, error)
}

var _ TxLookup = (*Client)(nil)

var prevoutLgr = log.WithModule("prevouts")

// ResolvePrevouts returns a copy of tx whose inputs carry the outputs they
// spend. Inputs are resolved in order with one lookup each. A failed lookup
// or a missing output index leaves that input's Prevout nil without failing
// the rest.
func ResolvePrevouts(ctx context.Context, lookup TxLookup, tx *Transaction) *Transaction {
	out := &Transaction{
		TxID: tx.TxID,
		Vin:  make([]TxIn, len(tx.Vin)),
		Vout: tx.Vout,
	}
	copy(out.Vin, tx.Vin)

	for i := range out.Vin {
		in := &out.Vin[i]
		if in.IsCoinbase() {
			continue
		}

		prevTx, err := lookup.GetRawTransactionContext(ctx, in.TxID)
		if err == nil && prevTx == nil {
			err = ErrBadResult
		}
		if err != nil {
			prevoutLgr.Debug("failed to fetch previous transaction", "txid", tx.TxID, "input", i, "prev_txid", in.TxID, "err", err)
			continue
		}

		in.Prevout = findOutput(prevTx.Vout, *in.Vout)
		if in.Prevout == nil {
			prevoutLgr.Debug("previous output not found", "txid", tx.TxID, "input", i, "prev_txid", in.TxID, "vout", *in.Vout)
		}
	}
	return out
}

// findOutput returns the last output numbered n. Well-formed transactions
// have at most one.
func findOutput(outs []TxOut, n uint32) *TxOut {
	var match *TxOut
	for i := range outs {
		if outs[i].N != nil && *outs[i].N == n {
			out := outs[i]
			match = &out
		}
	}
	return match
}
