package rpc

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"btcrpc/version"
)

// No per-call deadline; only the caller's context bounds the call.
const NoTimeout time.Duration = 0

const (
	// TimeoutLong covers block retrieval, mempool listing and raw
	// transaction retrieval.
	TimeoutLong = 120 * time.Second
	// TimeoutUTXOScan covers calls that walk the whole UTXO set.
	TimeoutUTXOScan = 1800 * time.Second
)

// send posts one request and returns the response body unparsed when the
// status is below 400.
func (c *Client) send(ctx context.Context, method string, body []byte, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Method: method, Err: err}
		}
	}

	if c.inflight != nil {
		if err := c.inflight.Acquire(ctx, 1); err != nil {
			return nil, &TransportError{Method: method, Err: err}
		}
		defer c.inflight.Release(1)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent)
	req.SetBasicAuth(c.username, c.password)

	c.lgr.Trace("sending rpc request", "method", method, "timeout", timeout)
	res, err := c.c.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	defer res.Body.Close()

	if kind := ClassifyStatus(res.StatusCode); kind != nil {
		c.lgr.Debug("rpc request failed", "method", method, "status", res.StatusCode)
		return nil, &StatusError{StatusCode: res.StatusCode, Kind: kind}
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	return resBody, nil
}
