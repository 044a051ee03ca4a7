package rpc

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK          = "ok"
	OutcomeTransport   = "transport"
	OutcomeStatus      = "status"
	OutcomeDeserialize = "deserialize"
	OutcomeBadResult   = "bad_result"
	OutcomeEncode      = "encode"
)

// Metrics contains the Prometheus collectors updated by a Client.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors with the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry registers the client collectors with registry.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "btcrpc_requests_total",
			Help: "The total number of JSON-RPC requests by method and outcome",
		}, []string{"method", "outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "btcrpc_request_duration_seconds",
			Help:    "JSON-RPC request latency by method",
			Buckets: prometheus.ExponentialBuckets(0.005, 4, 8),
		}, []string{"method"}),
	}
}

func (m *Metrics) observe(method string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, outcomeOf(err)).Inc()
	m.Duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func outcomeOf(err error) string {
	var (
		transportErr   *TransportError
		statusErr      *StatusError
		deserializeErr *DeserializeError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &transportErr):
		return OutcomeTransport
	case errors.As(err, &statusErr):
		return OutcomeStatus
	case errors.As(err, &deserializeErr):
		return OutcomeDeserialize
	case errors.Is(err, ErrBadResult):
		return OutcomeBadResult
	default:
		return OutcomeEncode
	}
}
