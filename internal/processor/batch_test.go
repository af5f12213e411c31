package processor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/extractor"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
	"github.com/humai-verify/screener/internal/processor"
)

func newTestEngine(t *testing.T) *analyzer.Engine {
	t.Helper()
	store, err := lexicon.Default()
	require.NoError(t, err)
	cfg := config.AnalysisConfig{
		Weights:         config.DefaultWeights(),
		AlertThresholds: config.DefaultAlertThresholds(),
		ExplainMinScore: 31,
		TrustDiscount:   15,
		CriticalFloor:   86,
	}
	return analyzer.NewEngine(store, cfg, "test", extractor.New(logger.NewNop()), logger.NewNop(), nil)
}

func TestBatchProcessorPreservesOrder(t *testing.T) {
	engine := newTestEngine(t)
	bp := processor.NewBatchProcessor(engine, nil, 4, logger.NewNop(), nil)

	inputs := []domain.AnalysisInput{
		{Type: domain.InputTypeText, Text: "Título: Contabilista Sénior\nEmpresa: BCI"},
		{Type: domain.InputTypeText, Text: "ganhe muito, contato apenas por whatsapp"},
		{Type: domain.InputTypeText, Text: "Título: Motorista\nSalário: 25.000 MT"},
	}

	results := bp.Process(context.Background(), inputs)
	require.Len(t, results, len(inputs))

	for i, res := range results {
		assert.Equal(t, i, res.Index)
		require.NotNil(t, res.Analysis, "item %d", i)
		assert.Empty(t, res.Error)
	}

	// The scammy middle item scores strictly higher than its neighbors.
	assert.Greater(t,
		results[1].Analysis.Assessment.OverallScore,
		results[0].Analysis.Assessment.OverallScore)
	assert.Greater(t,
		results[1].Analysis.Assessment.OverallScore,
		results[2].Analysis.Assessment.OverallScore)
}

func TestBatchProcessorEmptyBatch(t *testing.T) {
	bp := processor.NewBatchProcessor(newTestEngine(t), nil, 2, logger.NewNop(), nil)
	results := bp.Process(context.Background(), nil)
	assert.Empty(t, results)
}

func TestBatchProcessorCancelledContext(t *testing.T) {
	bp := processor.NewBatchProcessor(newTestEngine(t), nil, 2, logger.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := []domain.AnalysisInput{
		{Type: domain.InputTypeText, Text: "qualquer texto"},
	}
	results := bp.Process(ctx, inputs)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Analysis)
	assert.NotEmpty(t, results[0].Error)
}

func TestBatchProcessorWithRateLimiter(t *testing.T) {
	limiter := processor.NewRateLimiter(1000, 1000, logger.NewNop())
	bp := processor.NewBatchProcessor(newTestEngine(t), limiter, 3, logger.NewNop(), nil)

	inputs := make([]domain.AnalysisInput, 10)
	for i := range inputs {
		inputs[i] = domain.AnalysisInput{Type: domain.InputTypeText, Text: "Título: vaga normal"}
	}

	results := bp.Process(context.Background(), inputs)
	require.Len(t, results, 10)
	for _, res := range results {
		assert.NotNil(t, res.Analysis)
	}
}

func TestRateLimiterAllow(t *testing.T) {
	limiter := processor.NewRateLimiter(1, 1, logger.NewNop())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	limiter.SetLimit(100)
	limiter.SetBurst(100)
}

func TestBatchProcessorDefaultsConcurrency(t *testing.T) {
	bp := processor.NewBatchProcessor(newTestEngine(t), nil, 0, logger.NewNop(), nil)
	assert.Equal(t, 10, bp.Concurrency())
}
