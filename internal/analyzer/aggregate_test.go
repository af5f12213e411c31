package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
)

func testAnalysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		Weights:         config.DefaultWeights(),
		AlertThresholds: config.DefaultAlertThresholds(),
		ExplainMinScore: 31,
		TrustDiscount:   15,
		CriticalFloor:   86,
	}
}

func TestAggregateFactorDetailsAlwaysComplete(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	out := agg.Aggregate(nil, nil)
	require.Len(t, out.FactorDetails, len(domain.AllFactors))
	for _, f := range domain.AllFactors {
		score, ok := out.FactorDetails[f]
		assert.True(t, ok, "missing factor %s", f)
		assert.Zero(t, score)
	}
	assert.Equal(t, domain.RiskLow, out.RiskLevel)
	assert.Zero(t, out.OverallScore)
	assert.NotNil(t, out.Alerts)
}

func TestAggregateWeightedCombinationClamps(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	scores := make([]domain.FactorScore, 0, len(domain.AllFactors))
	for _, f := range domain.AllFactors {
		scores = append(scores, domain.FactorScore{Factor: f, Score: 100})
	}

	out := agg.Aggregate(scores, nil)
	assert.Equal(t, domain.RiskScoreMax, out.OverallScore)
	assert.Equal(t, domain.RiskCritical, out.RiskLevel)
}

func TestAggregateMediumRiskCase(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	out := agg.Aggregate([]domain.FactorScore{
		{Factor: domain.FactorTitle, Score: 70, Evidence: "modelo internacional"},
		{Factor: domain.FactorContact, Score: 80, Evidence: "apenas por WhatsApp"},
	}, nil)

	// 0.30*70 + 0.30*80 = 45
	assert.Equal(t, 45, out.OverallScore)
	assert.Equal(t, domain.RiskMedium, out.RiskLevel)

	require.Len(t, out.Alerts, 2)
	assert.Contains(t, out.Alerts[0], "modelo internacional")
	assert.Contains(t, out.Alerts[1], "apenas por WhatsApp")
}

func TestAggregateAlertsFollowFactorOrder(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	// Pass scores in reverse order; alerts still come out in canonical order.
	out := agg.Aggregate([]domain.FactorScore{
		{Factor: domain.FactorURL, Score: 90, Evidence: "bit.ly/x"},
		{Factor: domain.FactorTitle, Score: 90, Evidence: "dinheiro fácil"},
	}, nil)

	require.Len(t, out.Alerts, 2)
	assert.Contains(t, out.Alerts[0], "dinheiro fácil")
	assert.Contains(t, out.Alerts[1], "bit.ly/x")
}

func TestAggregateTrustDiscount(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")
	scores := []domain.FactorScore{
		{Factor: domain.FactorTitle, Score: 70},
		{Factor: domain.FactorContact, Score: 80},
	}

	baseline := agg.Aggregate(scores, nil)

	trustedGov := &domain.URLTrustInfo{
		IsTrusted:  true,
		TrustLevel: domain.TrustLevelHigh,
		DomainType: domain.DomainTypeGovernment,
	}
	discounted := agg.Aggregate(scores, trustedGov)
	assert.Equal(t, baseline.OverallScore-15, discounted.OverallScore)

	// Job portals carry no discount: anyone can publish there.
	portal := &domain.URLTrustInfo{
		IsTrusted:  true,
		TrustLevel: domain.TrustLevelHigh,
		DomainType: domain.DomainTypeJobPortal,
	}
	onPortal := agg.Aggregate(scores, portal)
	assert.Equal(t, baseline.OverallScore, onPortal.OverallScore)

	// Unknown domains never adjust the score either way.
	unknown := &domain.URLTrustInfo{
		IsTrusted:  false,
		TrustLevel: domain.TrustLevelUnknown,
		DomainType: domain.DomainTypeUnknown,
	}
	noAdjustment := agg.Aggregate(scores, unknown)
	assert.Equal(t, baseline.OverallScore, noAdjustment.OverallScore)
}

func TestAggregateTrustNeverIncreasesRisk(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	for _, typ := range []domain.DomainType{
		domain.DomainTypeJobPortal,
		domain.DomainTypeGovernment,
		domain.DomainTypeNGO,
		domain.DomainTypeTrustedDomain,
	} {
		scores := []domain.FactorScore{{Factor: domain.FactorDescription, Score: 60}}
		baseline := agg.Aggregate(scores, nil)
		trusted := agg.Aggregate(scores, &domain.URLTrustInfo{
			IsTrusted:  true,
			TrustLevel: domain.TrustLevelHigh,
			DomainType: typ,
		})
		assert.LessOrEqual(t, trusted.OverallScore, baseline.OverallScore, "type %s", typ)
	}
}

func TestAggregateCriticalFactorFloor(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	// A single critical factor forces the overall score to the floor even
	// though its weighted contribution alone is small.
	out := agg.Aggregate([]domain.FactorScore{
		{Factor: domain.FactorContact, Score: 90, Evidence: "somente whatsapp"},
	}, nil)
	assert.GreaterOrEqual(t, out.OverallScore, 86)
	assert.Equal(t, domain.RiskCritical, out.RiskLevel)

	// The floor holds against the trust discount.
	trusted := agg.Aggregate([]domain.FactorScore{
		{Factor: domain.FactorContact, Score: 90},
	}, &domain.URLTrustInfo{
		IsTrusted:  true,
		TrustLevel: domain.TrustLevelHigh,
		DomainType: domain.DomainTypeGovernment,
	})
	assert.GreaterOrEqual(t, trusted.OverallScore, 86)
}

func TestAggregateRecommendations(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	out := agg.Aggregate([]domain.FactorScore{
		{Factor: domain.FactorContact, Score: 80, Evidence: "apenas por WhatsApp"},
		{Factor: domain.FactorEmail, Score: 25, Evidence: "x@gmail.com"},
	}, nil)

	// Contact crossed the explanation threshold, email did not.
	require.Len(t, out.DetailedRecs, 1)
	assert.Equal(t, "apenas por WhatsApp", out.DetailedRecs[0].ProblematicSnippet)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, out.DetailedRecs[0].Title, out.Recommendations[0])

	// Explanations only for factors at or above the threshold; snippets for
	// any factor with evidence.
	assert.Contains(t, out.Explanations, domain.FactorContact)
	assert.NotContains(t, out.Explanations, domain.FactorEmail)
	assert.Contains(t, out.SuspiciousSnippet, domain.FactorContact)
	assert.Contains(t, out.SuspiciousSnippet, domain.FactorEmail)
}

func TestAggregateGenericRecommendationsForQuietResults(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	out := agg.Aggregate(nil, nil)
	assert.Equal(t, domain.RiskLow, out.RiskLevel)
	require.NotEmpty(t, out.DetailedRecs)
	assert.Len(t, out.Recommendations, len(out.DetailedRecs))

	// Suppressed when configured off.
	cfg := testAnalysisConfig()
	cfg.DisableGenericRecommendations = true
	quiet := NewAggregator(cfg, "test")
	assert.Empty(t, quiet.Aggregate(nil, nil).DetailedRecs)
}

func TestAggregateTrustRecommendations(t *testing.T) {
	agg := NewAggregator(testAnalysisConfig(), "test")

	portal := agg.Aggregate(nil, &domain.URLTrustInfo{
		IsTrusted:  true,
		TrustLevel: domain.TrustLevelHigh,
		DomainType: domain.DomainTypeJobPortal,
	})
	require.NotEmpty(t, portal.DetailedRecs)
	assert.Equal(t, jobPortalCautionTitle, portal.DetailedRecs[0].Title)

	trusted := agg.Aggregate(nil, &domain.URLTrustInfo{
		IsTrusted:  true,
		TrustLevel: domain.TrustLevelHigh,
		DomainType: domain.DomainTypeGovernment,
	})
	require.NotEmpty(t, trusted.DetailedRecs)
	assert.Equal(t, trustedSourceTitle, trusted.DetailedRecs[0].Title)
}
