package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTP-level Prometheus metrics. Defined in a standalone package to avoid
// import cycles between middlewares and services.

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Requests HTTP por path, método y status",
	}, []string{"path", "method", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "Duración de requests HTTP en milisegundos",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"path", "method"})

	LoginAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Intentos de login por resultado (success|invalid|error)",
	}, []string{"result"})

	UploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "product_image_uploads_total",
		Help: "Imágenes de producto subidas al object storage",
	})
)

// Register registra las métricas en el registry dado (o el default si es nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		LoginAttemptsTotal,
		UploadsTotal,
	} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
