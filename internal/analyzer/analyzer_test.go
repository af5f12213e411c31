package analyzer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humai-verify/screener/internal/analyzer"
	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/extractor"
	"github.com/humai-verify/screener/internal/lexicon"
	"github.com/humai-verify/screener/internal/logger"
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

const benignPosting = `Título: Assistente Administrativo
Empresa: Vodacom Moçambique
Descrição: Apoio administrativo ao departamento de vendas, gestão de arquivo e atendimento.
Requisitos: 12ª classe concluída, dois anos de experiência em funções similares, domínio de Excel
Salário: 45.000 MT mensais
Local: Maputo
Contacto: recrutamento@vodacom.co.mz, +258 21 123 456`

func TestAnalyzeScamPostingScoresHigh(t *testing.T) {
	engine := newTestEngine(t)

	text := "VAGA: Modelo internacional, sem experiência, ganhe muito! Contato apenas por WhatsApp 841234567"
	result := engine.Analyze(context.Background(), domain.AnalysisInput{
		Type: domain.InputTypeText,
		Text: text,
	})
	require.NotNil(t, result)

	assessment := result.Assessment
	assert.Contains(t,
		[]domain.RiskLevel{domain.RiskHigh, domain.RiskCritical},
		assessment.RiskLevel)
	assert.Greater(t, assessment.FactorDetails[domain.FactorTitle], 60)
	assert.Greater(t, assessment.FactorDetails[domain.FactorContact], 60)

	require.NotEmpty(t, assessment.Alerts)
	whatsappMentioned := false
	for _, alert := range assessment.Alerts {
		if strings.Contains(strings.ToLower(alert), "whatsapp") {
			whatsappMentioned = true
		}
	}
	assert.True(t, whatsappMentioned, "expected an alert referencing the WhatsApp-only contact")
	assert.NotEmpty(t, assessment.DetailedRecs)
}

func TestAnalyzeRealisticPostingScoresLow(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Analyze(context.Background(), domain.AnalysisInput{
		Type: domain.InputTypeText,
		Text: benignPosting,
	})

	assessment := result.Assessment
	assert.Equal(t, domain.RiskLow, assessment.RiskLevel)
	assert.LessOrEqual(t, assessment.OverallScore, domain.RiskLowMax)
	assert.Empty(t, assessment.Alerts)
	for _, f := range domain.AllFactors {
		assert.LessOrEqual(t, assessment.FactorDetails[f], 30, "factor %s unexpectedly high", f)
	}
	// Generic safety guidance still comes back for quiet results.
	assert.NotEmpty(t, assessment.Recommendations)
}

func TestAnalyzeTrustedSourceLowersScore(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	textOnly := engine.Analyze(ctx, domain.AnalysisInput{
		Type: domain.InputTypeText,
		Text: benignPosting,
	})
	fromGov := engine.Analyze(ctx, domain.AnalysisInput{
		Type: domain.InputTypeLink,
		URL:  "https://portal.gov.mz/vagas/42",
		Text: benignPosting,
	})

	require.NotNil(t, fromGov.URLTrust)
	assert.True(t, fromGov.URLTrust.IsTrusted)
	assert.Equal(t, domain.DomainTypeGovernment, fromGov.URLTrust.DomainType)
	assert.LessOrEqual(t, fromGov.Assessment.OverallScore, textOnly.Assessment.OverallScore)
}

func TestAnalyzeUnknownDomainNoAdjustment(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	textOnly := engine.Analyze(ctx, domain.AnalysisInput{
		Type: domain.InputTypeText,
		Text: benignPosting,
	})
	fromUnknown := engine.Analyze(ctx, domain.AnalysisInput{
		Type: domain.InputTypeLink,
		URL:  "https://recrutamento-mocambique.com/vaga/7",
		Text: benignPosting,
	})

	require.NotNil(t, fromUnknown.URLTrust)
	assert.False(t, fromUnknown.URLTrust.IsTrusted)
	assert.Equal(t, textOnly.Assessment.OverallScore, fromUnknown.Assessment.OverallScore)
}

func TestAnalyzeEmptyInputDegradesToZero(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Analyze(context.Background(), domain.AnalysisInput{Type: domain.InputTypeText})
	require.NotNil(t, result)
	assert.Equal(t, domain.RiskLow, result.Assessment.RiskLevel)
	assert.Zero(t, result.Assessment.OverallScore)
	assert.Empty(t, result.Assessment.Alerts)
	assert.Len(t, result.Assessment.FactorDetails, len(domain.AllFactors))
}

func TestAnalyzeFieldsNilPosting(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeFields(context.Background(), nil)
	require.NotNil(t, result)
	assert.Zero(t, result.Assessment.OverallScore)
}

func TestUpdateLexiconHotSwap(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	input := domain.AnalysisInput{Type: domain.InputTypeText, Text: "Título: oportunidade dourada"}
	before := engine.Analyze(ctx, input)
	assert.Zero(t, before.Assessment.FactorDetails[domain.FactorTitle])

	store, err := lexicon.Default()
	require.NoError(t, err)
	updated, err := store.MergeOverrides(map[domain.Factor][]lexicon.Pattern{
		domain.FactorTitle: {{Text: "oportunidade dourada", Weight: 70}},
	})
	require.NoError(t, err)
	engine.UpdateLexicon(updated)

	after := engine.Analyze(ctx, input)
	assert.Equal(t, 70, after.Assessment.FactorDetails[domain.FactorTitle])
	assert.Same(t, updated, engine.Lexicon())
}

func TestAnalyzeFieldsIsDeterministic(t *testing.T) {
	engine := newTestEngine(t)

	fields := &domain.PostingFields{
		Title:    "Modelo internacional, ganhe muito",
		Contacts: "apenas por whatsapp 841234567",
		RawText:  "Modelo internacional, ganhe muito. Contato apenas por whatsapp 841234567",
	}

	first := engine.AnalyzeFields(context.Background(), fields)
	second := engine.AnalyzeFields(context.Background(), fields)
	require.NotNil(t, first)
	require.NotNil(t, second)

	first.Assessment.AnalyzedAt = time.Time{}
	second.Assessment.AnalyzedAt = time.Time{}
	assert.Equal(t, first.Assessment, second.Assessment)
}
