package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/humai-verify/screener/internal/domain"
	"github.com/humai-verify/screener/internal/lexicon"
)

// compensationScorer combines lexicon patterns ("ganhe muito", "pagamento
// diário") with a numeric plausibility check on quoted figures.
type compensationScorer struct {
	matcher *Matcher
	bounds  lexicon.Heuristics
}

func newCompensationScorer(store *lexicon.Store) FieldScorer {
	return &compensationScorer{
		matcher: NewMatcher(store.Patterns(domain.FactorCompensation)),
		bounds:  store.Heuristics(),
	}
}

// moneyFigure matches an amount followed by a currency marker, e.g.
// "150.000 MT", "45000 meticais", "2000 USD". An optional "por dia"
// qualifier is captured to monthly-ize daily rates.
var moneyFigure = regexp.MustCompile(
	`(?i)(\d{1,3}(?:[.,\s]\d{3})*|\d+)\s*(mt|mts|mzn|meticais|metical|usd|d[oó]lares)\b(\s*por\s*dia)?`)

// dollarFigure matches "$2000" style amounts.
var dollarFigure = regexp.MustCompile(`\$\s*(\d{1,3}(?:[.,]\d{3})*|\d+)`)

// Rough conversion applied before band-checking dollar amounts.
const usdToMZN = 64

const daysPerMonth = 30

func (s *compensationScorer) Factor() domain.Factor { return domain.FactorCompensation }

func (s *compensationScorer) Score(fields *domain.PostingFields) domain.FactorScore {
	text := fields.Compensation
	if strings.TrimSpace(text) == "" {
		text = fields.RawText
	}
	if strings.TrimSpace(text) == "" {
		return domain.FactorScore{Factor: domain.FactorCompensation}
	}

	res := s.matcher.Match(text)
	score := res.Score
	evidence := res.Evidence

	if pen, snippet := s.figurePenalty(text); pen > 0 {
		score += pen
		if evidence == "" {
			evidence = snippet
		}
	}

	return domain.FactorScore{
		Factor:   domain.FactorCompensation,
		Score:    clampScore(score),
		Evidence: evidence,
	}
}

// figurePenalty scans for quoted amounts and penalizes figures outside the
// plausible monthly band. The largest penalty among all figures wins.
func (s *compensationScorer) figurePenalty(text string) (int, string) {
	best := 0
	snippet := ""

	check := func(amount float64, match string) {
		var pen int
		switch {
		case amount > float64(s.bounds.CompensationMax):
			pen = compensationHighPen
		case amount > 0 && amount < float64(s.bounds.CompensationMin):
			pen = compensationLowPen
		}
		if pen > best {
			best = pen
			snippet = strings.TrimSpace(match)
		}
	}

	for _, m := range moneyFigure.FindAllStringSubmatch(text, -1) {
		amount := parseAmount(m[1])
		if amount == 0 {
			continue
		}
		currency := strings.ToLower(m[2])
		if strings.HasPrefix(currency, "usd") || strings.HasPrefix(currency, "d") {
			amount *= usdToMZN
		}
		if strings.TrimSpace(m[3]) != "" {
			amount *= daysPerMonth
		}
		check(amount, m[0])
	}
	for _, m := range dollarFigure.FindAllStringSubmatch(text, -1) {
		if amount := parseAmount(m[1]); amount > 0 {
			check(amount*usdToMZN, m[0])
		}
	}

	return best, snippet
}

// parseAmount strips thousand separators and parses the remaining digits.
func parseAmount(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
