package rpc

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"btcrpc/log"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Client is a JSON-RPC client for a single node endpoint. It holds no state
// besides its configuration and is safe for concurrent use.
type Client struct {
	url      string
	username string
	password string
	c        *http.Client
	limiter  *rate.Limiter
	inflight *semaphore.Weighted
	metrics  *Metrics
	lgr      log.Logger
}

type Opt func(c *Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is
// ignored. Redirects are never followed regardless of the client's
// CheckRedirect policy.
func WithHTTPClient(client *http.Client) Opt {
	return func(c *Client) {
		if client != nil {
			c.c = client
		}
	}
}

// WithRateLimit makes every call wait for a token before it is sent.
func WithRateLimit(limit rate.Limit, burst int) Opt {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithMaxInFlight caps how many calls may be outstanding at once. Calls past
// the cap wait until one finishes or their context ends.
func WithMaxInFlight(n int64) Opt {
	return func(c *Client) {
		c.inflight = semaphore.NewWeighted(n)
	}
}

// WithMetrics records per-method request counts and latencies.
func WithMetrics(m *Metrics) Opt {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient returns a client for the node at url, e.g. http://127.0.0.1:8332.
// Redirects are not followed, so a redirecting proxy in front of the node
// surfaces as a decode error on the redirect body.
func NewClient(url string, username string, password string, opts ...Opt) *Client {
	c := &Client{
		url:      url,
		username: username,
		password: password,
		c:        new(http.Client),
		lgr:      log.WithModule("rpc"),
	}
	for _, opt := range opts {
		opt(c)
	}
	// 3xx responses are results like any other status below 400.
	noRedirect := *c.c
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c.c = &noRedirect
	return c
}

// HostURL builds an endpoint URL from a host/port pair.
func HostURL(host string, port int) string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(port)))
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}
