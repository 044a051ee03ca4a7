package rpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const jsonRPCVersion = "2.0"

// anylist holds positional parameters in call order.
type anylist []interface{}

// rpcRequest carries no id: every call is a single unary exchange.
type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// envelope only types the result. The error member is kept raw and read
// only when the result is missing.
type envelope[T any] struct {
	Result *T              `json:"result"`
	Error  json.RawMessage `json:"error"`
}

func encodeRequest(method string, args anylist) ([]byte, error) {
	params := make([]json.RawMessage, 0, len(args))
	for i, arg := range args {
		p, err := json.Marshal(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "error encoding param %d of %s", i, method)
		}
		params = append(params, p)
	}
	return json.Marshal(&rpcRequest{
		JSONRPC: jsonRPCVersion,
		Method:  method,
		Params:  params,
	})
}

// decodeResult unwraps the result member of a response envelope. It is the
// only place a missing result is judged.
func decodeResult[T any](raw []byte) (T, error) {
	var zero T
	env := new(envelope[T])
	if err := json.Unmarshal(raw, env); err != nil {
		return zero, &DeserializeError{Msg: err.Error()}
	}
	if env.Result == nil {
		if nodeErr := parseNodeError(env.Error); nodeErr != nil {
			return zero, errors.Wrap(ErrBadResult, nodeErr.Error())
		}
		return zero, ErrBadResult
	}
	return *env.Result, nil
}

func parseNodeError(raw json.RawMessage) *NodeError {
	if len(raw) == 0 {
		return nil
	}
	nodeErr := new(NodeError)
	if err := json.Unmarshal(raw, nodeErr); err != nil || nodeErr.Message == "" {
		return nil
	}
	return nodeErr
}

// request is the single call path of the method catalog. The per-call
// timeout comes from methodTimeouts.
func request[T any](ctx context.Context, c *Client, method string, args anylist) (T, error) {
	return requestWithTimeout[T](ctx, c, method, args, methodTimeouts[method])
}

func requestWithTimeout[T any](ctx context.Context, c *Client, method string, args anylist, timeout time.Duration) (T, error) {
	start := time.Now()
	res, err := doRequest[T](ctx, c, method, args, timeout)
	c.metrics.observe(method, start, err)
	return res, err
}

func doRequest[T any](ctx context.Context, c *Client, method string, args anylist, timeout time.Duration) (T, error) {
	var zero T
	body, err := encodeRequest(method, args)
	if err != nil {
		return zero, err
	}
	raw, err := c.send(ctx, method, body, timeout)
	if err != nil {
		return zero, err
	}
	return decodeResult[T](raw)
}
