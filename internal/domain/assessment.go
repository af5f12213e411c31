package domain

import "time"

// RiskLevel is the overall risk tier of a posting.
type RiskLevel string

// Risk tier constants, lowest to highest.
const (
	RiskLow      RiskLevel = "BAIXO"
	RiskMedium   RiskLevel = "MEDIO"
	RiskHigh     RiskLevel = "ALTO"
	RiskCritical RiskLevel = "CRITICO"
)

// Tier boundaries, inclusive on both ends.
const (
	RiskLowMax    = 30
	RiskMediumMax = 60
	RiskHighMax   = 85
	RiskScoreMax  = 100
)

// RiskLevelForScore maps an overall score to its tier.
// The mapping is total over [0,100]; out-of-range input is clamped first.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= RiskLowMax:
		return RiskLow
	case score <= RiskMediumMax:
		return RiskMedium
	case score <= RiskHighMax:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Recommendation is one educational guidance item tied to a factor's
// evidence when available.
type Recommendation struct {
	Title              string `json:"titulo"`
	Explanation        string `json:"explicacao"`
	ProblematicSnippet string `json:"paragrafoProblematico,omitempty"`
}

// RiskAssessment is the final aggregated output of one analysis.
//
// FactorDetails always contains all nine factor keys so callers can render
// a complete breakdown. SuspiciousSnippets and Explanations are sparse:
// snippets only for factors with score > 0, explanations only for factors
// at or above the explanation threshold.
type RiskAssessment struct {
	RiskLevel         RiskLevel         `json:"nivelRisco"`
	OverallScore      int               `json:"pontuacao"`
	Alerts            []string          `json:"alertas"`
	Recommendations   []string          `json:"recomendacoes"`
	DetailedRecs      []Recommendation  `json:"recomendacoesDetalhadas"`
	FactorDetails     map[Factor]int    `json:"detalhes"`
	SuspiciousSnippet map[Factor]string `json:"textosSuspeitos,omitempty"`
	Explanations      map[Factor]string `json:"explicacoesDetalhes,omitempty"`
	AnalyzedAt        time.Time         `json:"data_analise"`
	EngineVersion     string            `json:"engine_version,omitempty"`
}

// Analysis is the full outward result: assessment plus the extracted fields,
// the original text, and URL trust info when a source URL was present.
type Analysis struct {
	Assessment RiskAssessment `json:"analise"`
	Fields     PostingFields  `json:"dadosVaga"`
	RawText    string         `json:"textoOriginal"`
	URLTrust   *URLTrustInfo  `json:"urlTrustInfo,omitempty"`
}
