package rpc

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// HTTP status kinds. A non-success response is returned as a *StatusError
// whose Kind is one of these, so callers match with errors.Is.
var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrMethodNotAllowed     = errors.New("method not allowed")
	ErrTooManyRequests      = errors.New("too many requests")
	ErrUnhandledClientError = errors.New("unhandled client error")
	ErrInternalServerError  = errors.New("internal server error")
	ErrNotImplemented       = errors.New("not implemented")
	ErrBadGateway           = errors.New("bad gateway")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrGatewayTimeout       = errors.New("gateway timeout")
	ErrUnhandledServerError = errors.New("unhandled server error")
)

// ErrBadResult is returned when the response envelope parsed but carried no
// usable result.
var ErrBadResult = errors.New("bad result")

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusNotImplemented:      ErrNotImplemented,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrGatewayTimeout,
}

// ClassifyStatus maps an HTTP status code to its error kind. Codes below 400
// are successful and yield nil.
func ClassifyStatus(code int) error {
	if code >= 0 && code < 400 {
		return nil
	}
	if kind, ok := statusKinds[code]; ok {
		return kind
	}
	if code >= 400 && code < 500 {
		return ErrUnhandledClientError
	}
	return ErrUnhandledServerError
}

// StatusError is a response whose HTTP status was 400 or above.
type StatusError struct {
	StatusCode int
	Kind       error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Kind, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}

// TransportError wraps connection, TLS and timeout failures.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeserializeError carries the JSON decoder's message for a body that did not
// match the expected envelope shape.
type DeserializeError struct {
	Msg string
}

func (e *DeserializeError) Error() string {
	return "failed to deserialize response: " + e.Msg
}

// NodeError is the error object a node may put next to a null result. It is
// only ever attached as context to ErrBadResult.
type NodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}
