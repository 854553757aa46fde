// Package metrics exposes Prometheus counters for HTTP traffic and the
// transcription pipeline.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/model"
)

const namespace = "lucidscript"

// Metrics groups every collector the service registers.
type Metrics struct {
	HTTPRequests          *prometheus.CounterVec
	HTTPDuration          *prometheus.HistogramVec
	Transcriptions        *prometheus.CounterVec
	TranscriptionDuration *prometheus.HistogramVec
	Exports               *prometheus.CounterVec
	JobsInFlight          prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegisterer(reg, reg)
}

// NewWithRegisterer registers the service collectors on reg.
func NewWithRegisterer(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Transcriptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcriptions by provider and outcome.",
		}, []string{"provider", "outcome"}),
		TranscriptionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Wall time spent in the transcriber.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		}, []string{"provider"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Document exports by style, source and outcome.",
		}, []string{"style", "source", "outcome"}),
		JobsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "jobs_in_flight",
			Help:      "Transcription jobs currently holding a worker slot.",
		}),
		gatherer: gatherer,
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Transcriptions,
		m.TranscriptionDuration,
		m.Exports,
		m.JobsInFlight,
	)
	return m
}

// Handler serves the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveExport counts one finished export.
func (m *Metrics) ObserveExport(style, source string, err error) {
	m.Exports.WithLabelValues(style, source, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Transcriber records outcome and latency of every call to the wrapped
// transcriber.
type Transcriber struct {
	next     api.Transcriber
	provider string
	metrics  *Metrics
}

// InstrumentTranscriber wraps next under the given provider label.
func InstrumentTranscriber(next api.Transcriber, provider string, m *Metrics) *Transcriber {
	return &Transcriber{next: next, provider: provider, metrics: m}
}

func (t *Transcriber) Transcribe(ctx context.Context, inputFilePath string, opts api.Options) (*model.Transcript, error) {
	start := time.Now()
	result, err := t.next.Transcribe(ctx, inputFilePath, opts)
	t.metrics.TranscriptionDuration.WithLabelValues(t.provider).Observe(time.Since(start).Seconds())
	t.metrics.Transcriptions.WithLabelValues(t.provider, outcome(err)).Inc()
	return result, err
}

// Info reports the wrapped transcriber's description.
func (t *Transcriber) Info() api.Info {
	if d, ok := t.next.(api.Describer); ok {
		return d.Info()
	}
	return api.Info{Name: t.provider}
}
