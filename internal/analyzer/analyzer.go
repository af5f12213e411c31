// analyzer.go wires the scorers, trust classifier and aggregator into the
// engine behind the public API.
package analyzer

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/telemetry"
)

// FieldExtractor turns a raw analysis input into structured posting fields.
// Implemented by extractor.Heuristic; defined here so the engine depends on
// the behavior, not the package.
type FieldExtractor interface {
	Extract(ctx context.Context, input domain.AnalysisInput) *domain.PostingFields
}

// Engine runs the full analysis pipeline: extraction, per-factor scoring,
// trust classification and aggregation. Safe for concurrent use; the
// lexicon can be hot-swapped with UpdateLexicon.
type Engine struct {
	mu        sync.RWMutex
	scorers   []FieldScorer
	trust     *TrustClassifier
	store     *lexicon.Store
	agg       *Aggregator
	extractor FieldExtractor
	logger    logger.Logger
	telemetry *telemetry.Provider
}

// NewEngine builds an engine over the given lexicon.
func NewEngine(
	store *lexicon.Store,
	cfg config.AnalysisConfig,
	version string,
	ex FieldExtractor,
	log logger.Logger,
	tp *telemetry.Provider,
) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	e := &Engine{
		scorers:   newScorers(store),
		trust:     NewTrustClassifier(store, log),
		store:     store,
		agg:       NewAggregator(cfg, version),
		extractor: ex,
		logger:    log,
		telemetry: tp,
	}
	log.Info("analysis engine initialized",
		logger.Int("patterns", store.PatternCount()),
		logger.Int("scorers", len(e.scorers)),
		logger.String("version", version))
	return e
}

// Analyze extracts fields from the input and scores them.
func (e *Engine) Analyze(ctx context.Context, input domain.AnalysisInput) *domain.Analysis {
	fields := e.extractor.Extract(ctx, input)
	return e.AnalyzeFields(ctx, fields)
}

// AnalyzeFields scores pre-extracted posting fields. A nil or empty posting
// degrades to a zero assessment rather than an error.
func (e *Engine) AnalyzeFields(ctx context.Context, fields *domain.PostingFields) *domain.Analysis {
	start := time.Now()
	if e.telemetry != nil {
		var span trace.Span
		ctx, span = e.telemetry.StartSpan(ctx, "analyzer.AnalyzeFields")
		defer span.End()
	}
	if fields == nil {
		fields = &domain.PostingFields{}
	}

	e.mu.RLock()
	scorers := e.scorers
	trustClassifier := e.trust
	e.mu.RUnlock()

	// Fan the scorers out; each factor is independent.
	scores := make([]domain.FactorScore, len(scorers))
	var wg sync.WaitGroup
	for i, sc := range scorers {
		wg.Add(1)
		go func(i int, sc FieldScorer) {
			defer wg.Done()
			scores[i] = sc.Score(fields)
		}(i, sc)
	}

	var trust *domain.URLTrustInfo
	if fields.SourceURL != "" {
		info := trustClassifier.Classify(fields.SourceURL)
		trust = &info
	}
	wg.Wait()

	assessment := e.agg.Aggregate(scores, trust)

	duration := time.Since(start)
	if e.telemetry != nil {
		e.telemetry.RecordAnalysis(ctx, string(assessment.RiskLevel), duration)
		for _, sc := range scores {
			e.telemetry.RecordFactorScore(ctx, string(sc.Factor), sc.Score)
		}
	}
	e.logger.Debug("posting analyzed",
		logger.String("risk_level", string(assessment.RiskLevel)),
		logger.Int("score", assessment.OverallScore),
		logger.Int("alerts", len(assessment.Alerts)),
		logger.Int64("duration_ms", duration.Milliseconds()))

	return &domain.Analysis{
		Assessment: assessment,
		Fields:     *fields,
		RawText:    fields.RawText,
		URLTrust:   trust,
	}
}

// UpdateLexicon hot-swaps the lexicon without restart. Rebuilds all
// matchers atomically so in-flight analyses finish on the old set.
func (e *Engine) UpdateLexicon(store *lexicon.Store) {
	scorers := newScorers(store)
	trust := NewTrustClassifier(store, e.logger)

	e.mu.Lock()
	e.scorers = scorers
	e.trust = trust
	e.store = store
	e.mu.Unlock()

	e.logger.Info("lexicon updated",
		logger.Int("patterns", store.PatternCount()))
}

// Lexicon returns the currently active lexicon store.
func (e *Engine) Lexicon() *lexicon.Store {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store
}
