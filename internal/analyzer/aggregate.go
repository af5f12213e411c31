package analyzer

import (
	"fmt"
	"math"
	"time"

	"github.com/humai-verify/screener/internal/config"
	"github.com/humai-verify/screener/internal/domain"
)

// Aggregator folds per-factor scores into the final risk assessment:
// weighted combination, trust adjustment, tier mapping, alerts and
// recommendations.
type Aggregator struct {
	weights         map[domain.Factor]float64
	alertThresholds map[domain.Factor]int
	explainMin      int
	trustDiscount   int
	criticalFloor   int
	genericRecs     bool
	version         string
}

// NewAggregator builds an aggregator from analysis configuration.
func NewAggregator(cfg config.AnalysisConfig, version string) *Aggregator {
	return &Aggregator{
		weights:         cfg.Weights,
		alertThresholds: cfg.AlertThresholds,
		explainMin:      cfg.ExplainMinScore,
		trustDiscount:   cfg.TrustDiscount,
		criticalFloor:   cfg.CriticalFloor,
		genericRecs:     !cfg.DisableGenericRecommendations,
		version:         version,
	}
}

// Aggregate combines factor scores into one assessment. The trust argument
// may be nil when no source URL was analyzed; trust can only lower the
// overall score, and never below the critical floor implied by any single
// factor at or above it.
func (a *Aggregator) Aggregate(scores []domain.FactorScore, trust *domain.URLTrustInfo) domain.RiskAssessment {
	byFactor := make(map[domain.Factor]domain.FactorScore, len(scores))
	for _, sc := range scores {
		byFactor[sc.Factor] = sc
	}

	overall := 0.0
	maxFactor := 0
	details := make(map[domain.Factor]int, len(domain.AllFactors))
	for _, f := range domain.AllFactors {
		sc := byFactor[f]
		details[f] = sc.Score
		overall += a.weights[f] * float64(sc.Score)
		if sc.Score > maxFactor {
			maxFactor = sc.Score
		}
	}

	score := clampScore(int(math.Round(overall)))
	if trust != nil && trust.IsTrusted && trust.DomainType != domain.DomainTypeJobPortal {
		score = clampScore(score - a.trustDiscount)
	}
	if maxFactor >= a.criticalFloor && score < a.criticalFloor {
		score = a.criticalFloor
	}

	assessment := domain.RiskAssessment{
		RiskLevel:     domain.RiskLevelForScore(score),
		OverallScore:  score,
		FactorDetails: details,
		AnalyzedAt:    time.Now().UTC(),
		EngineVersion: a.version,
	}

	a.fillAlerts(&assessment, byFactor)
	a.fillEvidence(&assessment, byFactor)
	a.fillRecommendations(&assessment, byFactor, trust)
	return assessment
}

// fillAlerts emits one alert per factor at or above its threshold, in
// canonical factor order, quoting the evidence snippet when present.
func (a *Aggregator) fillAlerts(out *domain.RiskAssessment, scores map[domain.Factor]domain.FactorScore) {
	out.Alerts = []string{}
	for _, f := range domain.AllFactors {
		sc := scores[f]
		threshold, ok := a.alertThresholds[f]
		if !ok || sc.Score < threshold {
			continue
		}
		texts := factorGuidance[f]
		if sc.Evidence != "" {
			out.Alerts = append(out.Alerts, fmt.Sprintf("%s: %q", texts.AlertPrefix, sc.Evidence))
		} else {
			out.Alerts = append(out.Alerts, texts.AlertPrefix)
		}
	}
}

// fillEvidence populates the sparse snippet and explanation maps.
func (a *Aggregator) fillEvidence(out *domain.RiskAssessment, scores map[domain.Factor]domain.FactorScore) {
	snippets := make(map[domain.Factor]string)
	explanations := make(map[domain.Factor]string)
	for _, f := range domain.AllFactors {
		sc := scores[f]
		if sc.Score > 0 && sc.Evidence != "" {
			snippets[f] = sc.Evidence
		}
		if sc.Score >= a.explainMin {
			explanations[f] = explanationFor(f, sc)
		}
	}
	if len(snippets) > 0 {
		out.SuspiciousSnippet = snippets
	}
	if len(explanations) > 0 {
		out.Explanations = explanations
	}
}

func explanationFor(f domain.Factor, sc domain.FactorScore) string {
	if sc.Explanation != "" {
		return sc.Explanation
	}
	texts := factorGuidance[f]
	if sc.Evidence != "" {
		return fmt.Sprintf("%s (trecho: %q)", texts.RecBody, sc.Evidence)
	}
	return texts.RecBody
}

// fillRecommendations builds detailed guidance for every factor at or above
// the explanation threshold, prepends trust-derived guidance, and falls back
// to the generic safety items for low and medium results with nothing
// specific to say. The flat Recommendations list mirrors the titles.
func (a *Aggregator) fillRecommendations(
	out *domain.RiskAssessment,
	scores map[domain.Factor]domain.FactorScore,
	trust *domain.URLTrustInfo,
) {
	detailed := make([]domain.Recommendation, 0, len(domain.AllFactors))

	if trust != nil && trust.IsTrusted {
		if trust.DomainType == domain.DomainTypeJobPortal {
			detailed = append(detailed, domain.Recommendation{
				Title:       jobPortalCautionTitle,
				Explanation: jobPortalCautionBody,
			})
		} else {
			detailed = append(detailed, domain.Recommendation{
				Title:       trustedSourceTitle,
				Explanation: trustedSourceBody,
			})
		}
	}

	specific := 0
	for _, f := range domain.AllFactors {
		sc := scores[f]
		if sc.Score < a.explainMin {
			continue
		}
		texts := factorGuidance[f]
		detailed = append(detailed, domain.Recommendation{
			Title:              texts.RecTitle,
			Explanation:        texts.RecBody,
			ProblematicSnippet: sc.Evidence,
		})
		specific++
	}

	if specific == 0 && a.genericRecs &&
		(out.RiskLevel == domain.RiskLow || out.RiskLevel == domain.RiskMedium) {
		detailed = append(detailed, genericRecommendations...)
	}

	out.DetailedRecs = detailed
	out.Recommendations = make([]string, len(detailed))
	for i, rec := range detailed {
		out.Recommendations[i] = rec.Title
	}
}
