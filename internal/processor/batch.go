// Package processor runs analyses in bulk: a worker pool fans batch items
// out over the engine, with rate limiting to keep large batches from
// starving interactive requests.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/telemetry"
)

const defaultConcurrency = 10

// BatchProcessor processes multiple postings in parallel using a worker pool
type BatchProcessor struct {
	engine      *analyzer.Engine
	limiter     *RateLimiter
	concurrency int
	logger      logger.Logger
	telemetry   *telemetry.Provider
}

// ProcessResult holds the result of analyzing a single batch item. Index
// ties it back to the position in the request.
type ProcessResult struct {
	Index    int                  `json:"index"`
	Input    domain.AnalysisInput `json:"input"`
	Analysis *domain.Analysis     `json:"analysis,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// NewBatchProcessor creates a new batch processor. A nil limiter disables
// rate limiting.
func NewBatchProcessor(
	engine *analyzer.Engine,
	limiter *RateLimiter,
	concurrency int,
	log logger.Logger,
	tp *telemetry.Provider,
) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &BatchProcessor{
		engine:      engine,
		limiter:     limiter,
		concurrency: concurrency,
		logger:      log,
		telemetry:   tp,
	}
}

// Process analyzes a batch of inputs using the worker pool. Results come
// back in input order; individual failures are recorded per item and never
// abort the batch.
func (b *BatchProcessor) Process(ctx context.Context, inputs []domain.AnalysisInput) []ProcessResult {
	if len(inputs) == 0 {
		return []ProcessResult{}
	}

	b.logger.Info("starting batch analysis",
		logger.Int("batch_size", len(inputs)),
		logger.Int("concurrency", b.concurrency))
	startTime := time.Now()
	if b.telemetry != nil {
		b.telemetry.RecordBatchSize(len(inputs))
		b.telemetry.SetActiveWorkers(b.concurrency)
		defer b.telemetry.SetActiveWorkers(0)
	}

	jobs := make(chan int, len(inputs))
	results := make([]ProcessResult, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go b.worker(ctx, w, inputs, jobs, results, &wg)
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	analyzed := 0
	for i := range results {
		if results[i].Analysis != nil {
			analyzed++
		}
	}
	duration := time.Since(startTime)
	b.logger.Info("batch analysis complete",
		logger.Int("total", len(inputs)),
		logger.Int("analyzed", analyzed),
		logger.Int("failed", len(inputs)-analyzed),
		logger.Int64("duration_ms", duration.Milliseconds()))

	return results
}

// worker drains job indexes until the channel closes or the context ends.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	inputs []domain.AnalysisInput,
	jobs <-chan int,
	results []ProcessResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for i := range jobs {
		if ctx.Err() != nil {
			results[i] = ProcessResult{Index: i, Input: inputs[i], Error: ctx.Err().Error()}
			continue
		}
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				results[i] = ProcessResult{Index: i, Input: inputs[i], Error: err.Error()}
				continue
			}
		}
		results[i] = ProcessResult{
			Index:    i,
			Input:    inputs[i],
			Analysis: b.engine.Analyze(ctx, inputs[i]),
		}
	}

	b.logger.Debug("worker finished", logger.Int("worker_id", id))
}

// Concurrency returns the configured worker count.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
