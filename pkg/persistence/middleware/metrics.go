package middleware

import (
	"context"

	"github.com/castkit/scenevault/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

type metricsMiddleware struct {
	next ports.BlobStore

	ops          *prometheus.CounterVec
	writtenBytes prometheus.Histogram
}

// NewMetricsMiddleware creates a middleware that counts store operations and
// observes written document sizes. Metrics are registered on reg.
func NewMetricsMiddleware(reg prometheus.Registerer) Middleware {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scenevault",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Blob store operations by operation and outcome.",
	}, []string{"op", "outcome"})

	writtenBytes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "scenevault",
		Subsystem: "store",
		Name:      "written_bytes",
		Help:      "Size of written collection documents.",
		Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
	})

	reg.MustRegister(ops, writtenBytes)

	return func(next ports.BlobStore) ports.BlobStore {
		return &metricsMiddleware{
			next:         next,
			ops:          ops,
			writtenBytes: writtenBytes,
		}
	}
}

func (m *metricsMiddleware) count(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ops.WithLabelValues(op, outcome).Inc()
}

func (m *metricsMiddleware) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := m.next.Read(ctx, name)
	m.count("read", err)
	return data, err
}

func (m *metricsMiddleware) Write(ctx context.Context, name string, data []byte) error {
	err := m.next.Write(ctx, name, data)
	m.count("write", err)
	if err == nil {
		m.writtenBytes.Observe(float64(len(data)))
	}
	return err
}

func (m *metricsMiddleware) Delete(ctx context.Context, name string) error {
	err := m.next.Delete(ctx, name)
	m.count("delete", err)
	return err
}

func (m *metricsMiddleware) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := m.next.Exists(ctx, name)
	m.count("exists", err)
	return ok, err
}

func (m *metricsMiddleware) List(ctx context.Context) ([]string, error) {
	names, err := m.next.List(ctx)
	m.count("list", err)
	return names, err
}
