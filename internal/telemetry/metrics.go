// Package telemetry exposes analysis metrics to Prometheus and keeps a
// rolling latency window for the stats endpoint.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dgallion1/clearprose/internal/doctree"
)

const namespace = "clearprose"

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	analyses     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	words        prometheus.Counter
	issues       *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
	jobs         *prometheus.CounterVec
	queueDepth   prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Documents analyzed, by source and readability bucket.",
		}, []string{"source", "readability"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent analyzing a document.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"source"}),
		words: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_analyzed_total",
			Help:      "Words seen across all analyses.",
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issues_total",
			Help:      "Issues reported, by category.",
		}, []string{"category"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups, by result.",
		}, []string{"result"}),
		jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Finished async jobs, by final status.",
		}, []string{"status"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "job_queue_depth",
			Help:      "Jobs waiting for a worker.",
		}),
	}

	m.registry.MustRegister(
		m.analyses, m.duration, m.words, m.issues, m.cacheLookups, m.jobs, m.queueDepth,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: namespace}),
	)

	// Zero-valued series for every category and lookup result.
	for _, c := range doctree.Categories() {
		m.issues.WithLabelValues(string(c))
	}
	m.cacheLookups.WithLabelValues("hit")
	m.cacheLookups.WithLabelValues("miss")

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAnalysis records one finished analysis of doc.
func (m *Metrics) ObserveAnalysis(source string, doc *doctree.Block, d time.Duration) {
	readability := string(doc.Stats.Readability)
	m.analyses.WithLabelValues(source, readability).Inc()
	m.duration.WithLabelValues(source).Observe(d.Seconds())
	m.words.Add(float64(doc.Stats.Words))
	for _, is := range doc.AllIssues() {
		m.issues.WithLabelValues(string(is.Category)).Inc()
	}
}

// CacheLookup counts a hit or a miss.
func (m *Metrics) CacheLookup(hit bool) {
	if hit {
		m.cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// JobFinished counts a job reaching a final status.
func (m *Metrics) JobFinished(status string) {
	m.jobs.WithLabelValues(status).Inc()
}

// SetQueueDepth reports the current job queue length.
func (m *Metrics) SetQueueDepth(n int) {
	m.queueDepth.Set(float64(n))
}
