package rpc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	fixed := map[int]error{
		400: ErrBadRequest,
		401: ErrUnauthorized,
		403: ErrForbidden,
		404: ErrNotFound,
		405: ErrMethodNotAllowed,
		429: ErrTooManyRequests,
		500: ErrInternalServerError,
		501: ErrNotImplemented,
		502: ErrBadGateway,
		503: ErrServiceUnavailable,
		504: ErrGatewayTimeout,
	}

	for code := -1; code < 1000; code++ {
		kind := ClassifyStatus(code)
		switch {
		case fixed[code] != nil:
			require.Equal(t, fixed[code], kind, "status %d", code)
		case code >= 0 && code < 400:
			require.NoError(t, kind, "status %d", code)
		case code >= 400 && code < 500:
			require.Equal(t, ErrUnhandledClientError, kind, "status %d", code)
		default:
			require.Equal(t, ErrUnhandledServerError, kind, "status %d", code)
		}
	}
}

func TestStatusError_Unwrap(t *testing.T) {
	t.Parallel()

	var err error = &StatusError{StatusCode: 418, Kind: ErrUnhandledClientError}
	require.True(t, errors.Is(err, ErrUnhandledClientError))
	require.False(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "418")

	var statusErr *StatusError
	require.True(t, errors.As(errors.Wrap(err, "getblock"), &statusErr))
	require.Equal(t, 418, statusErr.StatusCode)
}

func TestTransportError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &TransportError{Method: "getblockcount", Err: cause}
	require.True(t, errors.Is(err, cause))
	require.Contains(t, err.Error(), "getblockcount")
}
