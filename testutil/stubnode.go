package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	StubUsername = "rpcuser"
	StubPassword = "rpcpassword"
)

// Call is one request as seen by a StubNode.
type Call struct {
	Method string
	Params []json.RawMessage
	Body   map[string]json.RawMessage
}

// Handler answers a call with a status code and a raw body.
type Handler func(params []json.RawMessage) (int, string)

// StubNode is an httptest server speaking enough JSON-RPC to exercise a
// client. Unregistered methods get bitcoind's 404 method-not-found reply.
type StubNode struct {
	*httptest.Server

	mtx      sync.Mutex
	handlers map[string]Handler
	calls    []Call
}

func NewStubNode(t *testing.T) *StubNode {
	n := &StubNode{
		handlers: make(map[string]Handler),
	}
	n.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.serve(w, r)
	}))
	t.Cleanup(n.Close)
	return n
}

// Handle registers a handler for method.
func (n *StubNode) Handle(method string, h Handler) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.handlers[method] = h
}

// HandleResult answers method with 200 and the given raw JSON result.
func (n *StubNode) HandleResult(method string, result string) {
	n.Handle(method, func([]json.RawMessage) (int, string) {
		return http.StatusOK, ResultBody(result)
	})
}

// HandleStatus answers method with a bare status code and body.
func (n *StubNode) HandleStatus(method string, status int, body string) {
	n.Handle(method, func([]json.RawMessage) (int, string) {
		return status, body
	})
}

func (n *StubNode) Calls() []Call {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	out := make([]Call, len(n.calls))
	copy(out, n.calls)
	return out
}

func (n *StubNode) CallCount(method string) int {
	var count int
	for _, call := range n.Calls() {
		if call.Method == method {
			count++
		}
	}
	return count
}

// serve answers 400 to a body that is not a JSON-RPC request, leaving the
// client under test to surface the failure.
func (n *StubNode) serve(w http.ResponseWriter, r *http.Request) {
	user, pass, ok := r.BasicAuth()
	if !ok || user != StubUsername || pass != StubPassword {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	call, err := parseCall(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	n.mtx.Lock()
	n.calls = append(n.calls, call)
	h := n.handlers[call.Method]
	n.mtx.Unlock()

	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":null,"error":{"code":-32601,"message":"Method not found"}}`)
		return
	}
	status, resBody := h(call.Params)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, resBody)
}

func parseCall(r io.Reader) (Call, error) {
	var call Call
	raw, err := io.ReadAll(r)
	if err != nil {
		return call, err
	}
	if err := json.Unmarshal(raw, &call.Body); err != nil {
		return call, err
	}
	if err := json.Unmarshal(call.Body["method"], &call.Method); err != nil {
		return call, err
	}
	if err := json.Unmarshal(call.Body["params"], &call.Params); err != nil {
		return call, err
	}
	return call, nil
}

// ResultBody wraps a raw JSON result the way bitcoind does.
func ResultBody(result string) string {
	return fmt.Sprintf(`{"result":%s,"error":null}`, result)
}
