// Package telemetry provides OpenTelemetry instrumentation for the screener
// service. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "screener"

// Metrics holds all screener Prometheus metrics
type Metrics struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysesFailed   *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	FactorScore      *prometheus.HistogramVec
	AlertsPerResult  prometheus.Histogram

	// Lexicon metrics
	LexiconPatterns prometheus.Gauge
	LexiconReloads  prometheus.Counter
	MatchDuration   prometheus.Histogram

	// Batch metrics
	BatchSize     prometheus.Histogram
	ActiveWorkers prometheus.Gauge
	BatchRejected prometheus.Counter
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initAnalysisMetrics(m)
	initLexiconMetrics(m)
	initBatchMetrics(m)
	return m
}

func initAnalysisMetrics(m *Metrics) {
	m.AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screener_analyses_total",
		Help: "Total postings analyzed, labeled by resulting risk level",
	}, []string{"risk_level"})

	m.AnalysesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "screener_analyses_failed_total",
		Help: "Total analysis requests that failed",
	}, []string{"error_code"})

	m.AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screener_analysis_duration_seconds",
		Help:    "Time to analyze a single posting",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})

	m.FactorScore = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "screener_factor_score",
		Help:    "Distribution of per-factor scores",
		Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"factor"})

	m.AlertsPerResult = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screener_alerts_per_result",
		Help:    "Number of alerts raised per analysis",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 7, 9},
	})
}

func initLexiconMetrics(m *Metrics) {
	m.LexiconPatterns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "screener_lexicon_patterns",
		Help: "Patterns in the currently active lexicon",
	})

	m.LexiconReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "screener_lexicon_reloads_total",
		Help: "Total lexicon hot reloads",
	})

	m.MatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screener_match_duration_seconds",
		Help:    "Time spent in lexicon matching (Aho-Corasick)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
}

func initBatchMetrics(m *Metrics) {
	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "screener_batch_size",
		Help:    "Number of postings per batch request",
		Buckets: []float64{1, 5, 10, 25, 50, 100},
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "screener_active_workers",
		Help: "Currently active batch worker goroutines",
	})

	m.BatchRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "screener_batch_rejected_total",
		Help: "Batch requests rejected for exceeding the size limit",
	})
}

// RecordAnalysis records metrics for a single completed analysis
func (p *Provider) RecordAnalysis(ctx context.Context, riskLevel string, duration time.Duration) {
	p.Metrics.AnalysesTotal.WithLabelValues(riskLevel).Inc()
	p.Metrics.AnalysisDuration.Observe(duration.Seconds())
}

// RecordAnalysisFailure records a failed analysis with error code
func (p *Provider) RecordAnalysisFailure(ctx context.Context, errorCode string) {
	p.Metrics.AnalysesFailed.WithLabelValues(errorCode).Inc()
}

// RecordFactorScore records one factor's score for distribution tracking
func (p *Provider) RecordFactorScore(ctx context.Context, factor string, score int) {
	p.Metrics.FactorScore.WithLabelValues(factor).Observe(float64(score))
}

// RecordAlerts records how many alerts an analysis produced
func (p *Provider) RecordAlerts(ctx context.Context, count int) {
	p.Metrics.AlertsPerResult.Observe(float64(count))
}

// RecordMatch records lexicon matcher timing
func (p *Provider) RecordMatch(ctx context.Context, duration time.Duration) {
	p.Metrics.MatchDuration.Observe(duration.Seconds())
}

// RecordLexiconReload records a hot reload and the new pattern count
func (p *Provider) RecordLexiconReload(ctx context.Context, patterns int) {
	p.Metrics.LexiconReloads.Inc()
	p.Metrics.LexiconPatterns.Set(float64(patterns))
}

// SetLexiconPatterns sets the active pattern gauge
func (p *Provider) SetLexiconPatterns(patterns int) {
	p.Metrics.LexiconPatterns.Set(float64(patterns))
}

// RecordBatchSize records the size of a batch request
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// IncrementBatchRejected increments the rejected batch counter
func (p *Provider) IncrementBatchRejected() {
	p.Metrics.BatchRejected.Inc()
}

// SetActiveWorkers sets the current active worker count
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
