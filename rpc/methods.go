package rpc

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	methodGetBlockchainInfo = "getblockchaininfo"
	methodGetNetworkInfo    = "getnetworkinfo"
	methodGetMiningInfo     = "getmininginfo"
	methodGetPeerInfo       = "getpeerinfo"
	methodGetIndexInfo      = "getindexinfo"
	methodGetBlockCount     = "getblockcount"
	methodGetBlockHash      = "getblockhash"
	methodGetBlock          = "getblock"
	methodGetRawMempool     = "getrawmempool"
	methodGetRawTransaction = "getrawtransaction"
	methodGetDifficulty     = "getdifficulty"
	methodGetTxOutSetInfo   = "gettxoutsetinfo"
)

// methodTimeouts bounds each call by method. Methods missing from the map
// run without a deadline.
var methodTimeouts = map[string]time.Duration{
	methodGetBlockchainInfo: NoTimeout,
	methodGetNetworkInfo:    NoTimeout,
	methodGetMiningInfo:     NoTimeout,
	methodGetPeerInfo:       NoTimeout,
	methodGetIndexInfo:      NoTimeout,
	methodGetBlockCount:     NoTimeout,
	methodGetBlockHash:      NoTimeout,
	methodGetDifficulty:     NoTimeout,
	methodGetBlock:          TimeoutLong,
	methodGetRawMempool:     TimeoutLong,
	methodGetRawTransaction: TimeoutLong,
	methodGetTxOutSetInfo:   TimeoutUTXOScan,
}

// getblock verbosity levels.
const (
	blockVerbosityHex  = 0
	blockVerbosityFull = 2
)

func (c *Client) GetBlockchainInfo() (*BlockchainInfo, error) {
	return c.GetBlockchainInfoContext(context.Background())
}

func (c *Client) GetBlockchainInfoContext(ctx context.Context) (*BlockchainInfo, error) {
	res, err := request[BlockchainInfo](ctx, c, methodGetBlockchainInfo, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetNetworkInfo() (*NetworkInfo, error) {
	return c.GetNetworkInfoContext(context.Background())
}

func (c *Client) GetNetworkInfoContext(ctx context.Context) (*NetworkInfo, error) {
	res, err := request[NetworkInfo](ctx, c, methodGetNetworkInfo, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetMiningInfo() (*MiningInfo, error) {
	return c.GetMiningInfoContext(context.Background())
}

func (c *Client) GetMiningInfoContext(ctx context.Context) (*MiningInfo, error) {
	res, err := request[MiningInfo](ctx, c, methodGetMiningInfo, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetPeerInfo() ([]PeerInfo, error) {
	return c.GetPeerInfoContext(context.Background())
}

func (c *Client) GetPeerInfoContext(ctx context.Context) ([]PeerInfo, error) {
	return request[[]PeerInfo](ctx, c, methodGetPeerInfo, nil)
}

func (c *Client) GetIndexInfo() (*IndexInfo, error) {
	return c.GetIndexInfoContext(context.Background())
}

func (c *Client) GetIndexInfoContext(ctx context.Context) (*IndexInfo, error) {
	res, err := request[IndexInfo](ctx, c, methodGetIndexInfo, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockCount returns the height of the most-work fully-validated chain.
func (c *Client) GetBlockCount() (int64, error) {
	return c.GetBlockCountContext(context.Background())
}

func (c *Client) GetBlockCountContext(ctx context.Context) (int64, error) {
	return request[int64](ctx, c, methodGetBlockCount, nil)
}

// GetBlockHash returns the hash of the best-chain block at height.
func (c *Client) GetBlockHash(height int64) (*chainhash.Hash, error) {
	return c.GetBlockHashContext(context.Background(), height)
}

func (c *Client) GetBlockHashContext(ctx context.Context, height int64) (*chainhash.Hash, error) {
	res, err := request[chainhash.Hash](ctx, c, methodGetBlockHash, anylist{height})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlock returns the block with every transaction decoded.
func (c *Client) GetBlock(blockHash *chainhash.Hash) (*Block, error) {
	return c.GetBlockContext(context.Background(), blockHash)
}

func (c *Client) GetBlockContext(ctx context.Context, blockHash *chainhash.Hash) (*Block, error) {
	args := anylist{blockHash.String(), blockVerbosityFull}
	res, err := request[Block](ctx, c, methodGetBlock, args)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBlockHex returns the serialized block as the node encodes it.
func (c *Client) GetBlockHex(blockHash *chainhash.Hash) (string, error) {
	return c.GetBlockHexContext(context.Background(), blockHash)
}

func (c *Client) GetBlockHexContext(ctx context.Context, blockHash *chainhash.Hash) (string, error) {
	args := anylist{blockHash.String(), blockVerbosityHex}
	return request[string](ctx, c, methodGetBlock, args)
}

// GetRawMempool returns the ids of all transactions in the mempool.
func (c *Client) GetRawMempool() ([]chainhash.Hash, error) {
	return c.GetRawMempoolContext(context.Background())
}

func (c *Client) GetRawMempoolContext(ctx context.Context) ([]chainhash.Hash, error) {
	return request[[]chainhash.Hash](ctx, c, methodGetRawMempool, nil)
}

// GetRawTransaction returns the verbose form of a transaction. Transactions
// outside the mempool need a node running with -txindex.
func (c *Client) GetRawTransaction(txid *chainhash.Hash) (*Transaction, error) {
	return c.GetRawTransactionContext(context.Background(), txid)
}

func (c *Client) GetRawTransactionContext(ctx context.Context, txid *chainhash.Hash) (*Transaction, error) {
	args := anylist{txid.String(), true}
	res, err := request[Transaction](ctx, c, methodGetRawTransaction, args)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetRawTransactionWithPrevouts fetches a transaction and resolves the output
// each of its inputs spends. See ResolvePrevouts.
func (c *Client) GetRawTransactionWithPrevouts(txid *chainhash.Hash) (*Transaction, error) {
	return c.GetRawTransactionWithPrevoutsContext(context.Background(), txid)
}

func (c *Client) GetRawTransactionWithPrevoutsContext(ctx context.Context, txid *chainhash.Hash) (*Transaction, error) {
	tx, err := c.GetRawTransactionContext(ctx, txid)
	if err != nil {
		return nil, err
	}
	return ResolvePrevouts(ctx, c, tx), nil
}

func (c *Client) GetDifficulty() (float64, error) {
	return c.GetDifficultyContext(context.Background())
}

func (c *Client) GetDifficultyContext(ctx context.Context) (float64, error) {
	return request[float64](ctx, c, methodGetDifficulty, nil)
}

// GetTxOutSetInfo scans the whole UTXO set, which can take many minutes.
func (c *Client) GetTxOutSetInfo() (*TxOutSetInfo, error) {
	return c.GetTxOutSetInfoContext(context.Background())
}

func (c *Client) GetTxOutSetInfoContext(ctx context.Context) (*TxOutSetInfo, error) {
	res, err := request[TxOutSetInfo](ctx, c, methodGetTxOutSetInfo, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
