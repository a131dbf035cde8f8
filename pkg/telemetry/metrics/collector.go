package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/config"
)

// Collector registers and records all passfort metrics.
type Collector struct {
	registry *prometheus.Registry

	analysesTotal      *prometheus.CounterVec
	generationsTotal   *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	dictionaryReloads  prometheus.Counter
	dictionaryEntries  prometheus.Gauge
	historyRecordCount prometheus.Gauge
}

// NewCollector creates a collector with its own registry. The namespace
// comes from configuration ("passfort" by default).
func NewCollector(cfg config.MetricsConfig) *Collector {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "passfort"
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &Collector{
		registry: registry,
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Password analyses performed, by resulting strength level.",
		}, []string{"strength", "source"}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Passwords and passphrases generated, by mode.",
		}, []string{"mode"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by handler.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"handler", "status"}),
		dictionaryReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dictionary_reloads_total",
			Help:      "Successful common-password dictionary reloads.",
		}),
		dictionaryEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dictionary_entries",
			Help:      "Entries in the active common-password dictionary.",
		}),
		historyRecordCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_records",
			Help:      "Records currently in the analysis history store.",
		}),
	}

	registry.MustRegister(
		c.analysesTotal,
		c.generationsTotal,
		c.requestDuration,
		c.dictionaryReloads,
		c.dictionaryEntries,
		c.historyRecordCount,
	)
	return c
}

// RecordAnalysis counts one completed analysis.
func (c *Collector) RecordAnalysis(strength analyzer.Strength, source string) {
	c.analysesTotal.WithLabelValues(string(strength), source).Inc()
}

// RecordGeneration counts one generated credential ("password" or
// "passphrase").
func (c *Collector) RecordGeneration(mode string) {
	c.generationsTotal.WithLabelValues(mode).Inc()
}

// ObserveRequest records one HTTP request's duration.
func (c *Collector) ObserveRequest(handler, status string, seconds float64) {
	c.requestDuration.WithLabelValues(handler, status).Observe(seconds)
}

// RecordDictionaryReload counts a successful dictionary reload and
// updates the active entry gauge.
func (c *Collector) RecordDictionaryReload(entries int) {
	c.dictionaryReloads.Inc()
	c.dictionaryEntries.Set(float64(entries))
}

// SetDictionaryEntries updates the active entry gauge.
func (c *Collector) SetDictionaryEntries(entries int) {
	c.dictionaryEntries.Set(float64(entries))
}

// SetHistoryRecords updates the history record gauge.
func (c *Collector) SetHistoryRecords(count int64) {
	c.historyRecordCount.Set(float64(count))
}

// Handler serves the registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
